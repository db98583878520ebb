package integer

// Cmp compares x and y and returns:
//
//  -1 if x <  y
//   0 if x == y
//  +1 if x >  y
func (x Int) Cmp(y Int) int {
	a, b := x.seq(), y.seq()

	if a[0] != b[0] {
		if a[0] == 0 {
			return 1
		}

		return -1
	}

	// Same sign bit: after sign extension to a common width the larger value
	// has the first 1 where they differ, for negative values too.
	width := maxInt(len(a), len(b))
	a, b = resize(a, width), resize(b, width)

	for i := range a {
		if a[i] != b[i] {
			if a[i] == 1 {
				return 1
			}

			return -1
		}
	}

	return 0
}

// Equal reports whether x and y hold the same value.
func (x Int) Equal(y Int) bool {
	a, b := x.seq(), y.seq()

	width := maxInt(len(a), len(b))
	a, b = resize(a, width), resize(b, width)

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
