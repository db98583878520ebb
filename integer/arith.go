package integer

// Add returns x + y.
func (x Int) Add(y Int) Int {
	// One guard bit absorbs the carry out of the sign position.
	width := maxInt(x.BitLen(), y.BitLen()) + 1

	sum := addFixed(resize(x.seq(), width), resize(y.seq(), width))

	return Int{bits: minimize(sum)}
}

// addFixed adds b to a without growing: the result is as wide as a and any
// carry out of the most significant bit is lost. It is only safe where the
// width is already known to hold the sum.
func addFixed(a, b []byte) []byte {
	if len(b) != len(a) {
		b = resize(b, len(a))
	}

	out := make([]byte, len(a))

	var carry byte
	for i := len(a) - 1; i >= 0; i-- {
		v := a[i] + b[i] + carry
		out[i] = v & 1
		carry = v >> 1
	}

	return out
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{bits: minimize(negate(x.seq()))}
}

// negate returns the two's-complement negation of b by decrementing and then
// inverting every bit. The work is done one bit wider than b so that the most
// negative value of a width has room for its positive counterpart.
func negate(b []byte) []byte {
	out := resize(b, len(b)+1)

	// Decrement, borrowing toward the most significant bit.
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == 1 {
			out[i] = 0

			break
		}

		out[i] = 1
	}

	for i := range out {
		out[i] ^= 1
	}

	return out
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y using Booth's algorithm.
//
// The multiplicand x and the multiplier y are widened to w = len(x) + len(y)
// bits, enough to hold any product. A 2w bit register upper:lower starts as
// 0:y. For each of the w bits of y, examined least significant first along
// with the bit before it:
//
//  01 -> upper += x  (end of a run of ones)
//  10 -> upper -= x  (start of a run of ones)
//  00, 11 -> nothing
//
// and then the register is arithmetic shifted right by one. When every bit of
// y has been examined, lower holds the product.
func (x Int) Mul(y Int) Int {
	w := x.BitLen() + y.BitLen()

	multiplicand := resize(x.seq(), w)
	multiplicandNeg := resize(minimize(negate(multiplicand)), w)

	upper := make([]byte, w)
	lower := resize(y.seq(), w)

	var prev byte
	cur := lower[w-1]

	for i := 0; i < w; i++ {
		if cur != prev {
			if cur == 0 {
				upper = addFixed(upper, multiplicand)
			} else {
				upper = addFixed(upper, multiplicandNeg)
			}
		}

		upper, lower = shiftRight(upper, lower)

		prev = cur
		cur = lower[w-1]
	}

	return Int{bits: minimize(lower)}
}

// shiftRight arithmetic shifts the register upper:lower right by one bit. The
// least significant bit of upper moves into lower and the least significant
// bit of lower is dropped.
func shiftRight(upper, lower []byte) ([]byte, []byte) {
	w := len(upper)

	nu := make([]byte, w)
	nu[0] = upper[0]
	copy(nu[1:], upper[:w-1])

	nl := make([]byte, w)
	nl[0] = upper[w-1]
	copy(nl[1:], lower[:w-1])

	return nu, nl
}

// Factorial returns x!. It fails with ErrNegativeFactorial if x < 0.
func (x Int) Factorial() (Int, error) {
	if x.negative() {
		return Int{}, ErrNegativeFactorial
	}

	result := one
	for i := one; i.Cmp(x) <= 0; i = i.Add(one) {
		result = result.Mul(i)
	}

	return result, nil
}
