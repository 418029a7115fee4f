package timedigits

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// Count is the number of displayed digits: HH, MM and SS.
const Count = 6

// Digits holds [H-tens, H-ones, M-tens, M-ones, S-tens, S-ones].
type Digits [Count]int

// Sample returns the zero-padded 24-hour digits of now in its own location.
func Sample(now time.Time) Digits {
	parts := []int{now.Hour(), now.Minute(), now.Second()}

	flat := lo.FlatMap(parts, func(v int, _ int) []int {
		return []int{v / 10, v % 10}
	})

	var d Digits

	copy(d[:], flat)

	return d
}

// UntilNextSecond returns the delay from now to the start of the next
// wall-clock second. The result is in (0, 1s]: exactly on a boundary it waits
// a full second.
func UntilNextSecond(now time.Time) time.Duration {
	return time.Second - time.Duration(now.Nanosecond())
}

// String renders the digits as HH:MM:SS.
func (d Digits) String() string {
	return fmt.Sprintf("%d%d:%d%d:%d%d", d[0], d[1], d[2], d[3], d[4], d[5])
}
