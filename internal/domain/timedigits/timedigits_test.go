package timedigits

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestSample checks zero padding and digit order for several instants.
func TestSample(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		now  time.Time
		want Digits
	}{
		{
			name: "morning",
			now:  time.Date(2024, 1, 1, 9, 5, 7, 0, time.Local),
			want: Digits{0, 9, 0, 5, 0, 7},
		},
		{
			name: "midnight",
			now:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want: Digits{0, 0, 0, 0, 0, 0},
		},
		{
			name: "last second of the day",
			now:  time.Date(2024, 12, 31, 23, 59, 59, 999_999_999, time.UTC),
			want: Digits{2, 3, 5, 9, 5, 9},
		},
		{
			name: "afternoon",
			now:  time.Date(2025, 12, 15, 17, 0, 30, 123456789, time.UTC),
			want: Digits{1, 7, 0, 0, 3, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.want, Sample(tc.now)); diff != "" {
				t.Errorf("Sample(%s) mismatch (-want +got):\n%s", tc.now, diff)
			}
		})
	}
}

// TestSample_UsesLocation verifies that digits follow the location of the instant.
func TestSample_UsesLocation(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2024, 1, 1, 22, 15, 0, 0, time.UTC).In(zone)

	require.Equal(t, Digits{0, 1, 1, 5, 0, 0}, Sample(now))
}

// TestUntilNextSecond verifies second-boundary alignment instead of a fixed interval.
func TestUntilNextSecond(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 9, 5, 7, 0, time.UTC)

	require.Equal(t, 750*time.Millisecond, UntilNextSecond(base.Add(250*time.Millisecond)))
	require.Equal(t, time.Second, UntilNextSecond(base))
	require.Equal(t, time.Nanosecond, UntilNextSecond(base.Add(time.Second-time.Nanosecond)))
}

// TestDigits_String renders the digits for logs.
func TestDigits_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "09:05:07", Digits{0, 9, 0, 5, 0, 7}.String())
}
