package piece

// Wall kick offsets, in board coordinates (rows grow downwards). Each list
// starts with the identity shift.
var (
	jlstzKicks = [4][2][]Point{
		// from 0
		{
			{{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}}, // 0 -> 1
			{{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},    // 0 -> 3
		},
		// from 1
		{
			{{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}}, // 1 -> 2
			{{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}}, // 1 -> 0
		},
		// from 2
		{
			{{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},    // 2 -> 3
			{{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}}, // 2 -> 1
		},
		// from 3
		{
			{{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}}, // 3 -> 0
			{{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}}, // 3 -> 2
		},
	}

	barKicks = [4][2][]Point{
		{
			{{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}}, // 0 -> 1
			{{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}}, // 0 -> 3
		},
		{
			{{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}}, // 1 -> 2
			{{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}}, // 1 -> 0
		},
		{
			{{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}}, // 2 -> 3
			{{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}}, // 2 -> 1
		},
		{
			{{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}}, // 3 -> 0
			{{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}}, // 3 -> 2
		},
	}

	noKicks = []Point{{0, 0}}
)

func kickTable(shape Shape, from int, dir Direction) []Point {
	switch shape {
	case O:
		return noKicks
	case I:
		return barKicks[from][dir]
	default:
		return jlstzKicks[from][dir]
	}
}
