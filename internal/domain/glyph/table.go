package glyph

// Short names keep the table readable as a picture of each digit.
var (
	h  = Horizontal
	v  = Vertical
	tl = TopLeft
	tr = TopRight
	bl = BottomLeft
	br = BottomRight
	e  = Empty
)

// table maps a digit to its glyph. Glyph is an array, so lookups hand out
// copies and the table itself never changes.
//
//nolint:gochecknoglobals // Static glyph data.
var table = [Count]Glyph{
	{ // 0
		br, h, h, bl,
		v, br, bl, v,
		v, v, v, v,
		v, v, v, v,
		v, tr, tl, v,
		tr, h, h, tl,
	},
	{ // 1
		br, h, bl, e,
		tr, bl, v, e,
		e, v, v, e,
		e, v, v, e,
		br, tl, tr, bl,
		tr, h, h, tl,
	},
	{ // 2
		br, h, h, bl,
		tr, h, bl, v,
		br, h, tl, v,
		v, br, h, tl,
		v, tr, h, bl,
		tr, h, h, tl,
	},
	{ // 3
		br, h, h, bl,
		tr, h, bl, v,
		e, br, tl, v,
		e, tr, bl, v,
		br, h, tl, v,
		tr, h, h, tl,
	},
	{ // 4
		br, bl, br, bl,
		v, v, v, v,
		v, tr, tl, v,
		tr, h, bl, v,
		e, e, v, v,
		e, e, tr, tl,
	},
	{ // 5
		br, h, h, bl,
		v, br, h, tl,
		v, tr, h, bl,
		tr, h, bl, v,
		br, h, tl, v,
		tr, h, h, tl,
	},
	{ // 6
		br, h, h, bl,
		v, br, h, tl,
		v, tr, h, bl,
		v, br, bl, v,
		v, tr, tl, v,
		tr, h, h, tl,
	},
	{ // 7
		br, h, h, bl,
		tr, h, bl, v,
		e, e, v, v,
		e, e, v, v,
		e, e, v, v,
		e, e, tr, tl,
	},
	{ // 8
		br, h, h, bl,
		v, br, bl, v,
		v, tr, tl, v,
		v, br, bl, v,
		v, tr, tl, v,
		tr, h, h, tl,
	},
	{ // 9
		br, h, h, bl,
		v, br, bl, v,
		v, tr, tl, v,
		tr, h, bl, v,
		br, h, tl, v,
		tr, h, h, tl,
	},
}
