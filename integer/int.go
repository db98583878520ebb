package integer

// Int is a signed integer of arbitrary size.
//
// The value is stored as a two's-complement bit sequence, most significant
// bit first, in the fewest bits that still carry an explicit sign bit. Int
// values are immutable: every operation returns a new Int and never changes
// its operands. The zero value is 0.
type Int struct {
	bits []byte
}

var (
	zero = Int{bits: []byte{0}}
	one  = Int{bits: []byte{0, 1}}
)

// seq returns the bit sequence of x. The result must not be modified.
func (x Int) seq() []byte {
	if len(x.bits) == 0 {
		return zero.bits
	}

	return x.bits
}

// BitLen returns the number of bits in the minimal two's-complement
// representation of x, including the sign bit.
func (x Int) BitLen() int {
	return len(x.seq())
}

// Sign returns -1 if x < 0, 0 if x == 0 and +1 if x > 0.
func (x Int) Sign() int {
	b := x.seq()

	switch {
	case b[0] == 1:
		return -1
	case len(b) == 1:
		return 0
	}

	return 1
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

func (x Int) negative() bool {
	return x.seq()[0] == 1
}

// minimize strips redundant copies of the sign bit so that exactly one
// remains. The result shares storage with b.
func minimize(b []byte) []byte {
	i := 0
	for i+1 < len(b) && b[i+1] == b[0] {
		i++
	}

	return b[i:]
}

// resize returns a copy of b that is width bits wide. Growing sign-extends.
// Shrinking drops bits from the most significant end; callers must never
// shrink below the minimal width of the value.
func resize(b []byte, width int) []byte {
	out := make([]byte, width)

	if width <= len(b) {
		copy(out, b[len(b)-width:])

		return out
	}

	gap := width - len(b)
	for i := 0; i < gap; i++ {
		out[i] = b[0]
	}

	copy(out[gap:], b)

	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
