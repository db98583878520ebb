package decimal

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of decimal errors.
var Error = errs.Class("decimal")

// Digits is a base 10 digit vector, most significant digit first.
type Digits []byte

// Zero is the vector for 0.
var Zero = Digits{0}

// Parse returns the digit vector for s. Only ASCII digits are accepted and s
// must not be empty. Leading zeros are removed.
func Parse(s string) (d Digits, err error) {
	if len(s) == 0 {
		return nil, Error.New("empty digits")
	}

	d = make(Digits, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, Error.New("invalid digit %q at %d", c, i)
		}

		d[i] = c - '0'
	}

	return d.trim(), nil
}

// trim removes leading zeros, leaving at least one digit.
func (d Digits) trim() Digits {
	if len(d) == 0 {
		return Zero
	}

	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}

	return d[i:]
}

// IsZero reports whether d is 0.
func (d Digits) IsZero() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}

	return true
}

// Odd reports whether d is odd.
func (d Digits) Odd() bool {
	if len(d) == 0 {
		return false
	}

	return d[len(d)-1]%2 == 1
}

// Half returns d divided by two, rounding down. The remainder of each digit
// carries into the next one to the right.
func (d Digits) Half() Digits {
	q := make(Digits, len(d))

	var carry byte
	for i, v := range d {
		cur := v + 10*carry
		q[i] = cur / 2
		carry = cur % 2
	}

	return q.trim()
}

// MulAdd returns d*m + a.
func (d Digits) MulAdd(m, a int) Digits {
	out := make(Digits, len(d))
	copy(out, d)

	carry := a
	for i := len(out) - 1; i >= 0; i-- {
		v := int(out[i])*m + carry
		out[i] = byte(v % 10)
		carry = v / 10
	}

	// Leftover carry grows the most significant end.
	var head Digits
	for carry > 0 {
		head = append(Digits{byte(carry % 10)}, head...)
		carry /= 10
	}

	if len(head) > 0 {
		out = append(head, out...)
	}

	return out.trim()
}

// hexValues maps hex digits to their values. Lower case is not produced by
// the integer package but is accepted.
var hexValues = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}

	for i, c := range "0123456789ABCDEF" {
		t[c] = int8(i)
	}

	for i, c := range "abcdef" {
		t[c] = int8(10 + i)
	}

	return t
}()

// FromHex converts a string of hex digits to a decimal digit vector.
func FromHex(hex string) (d Digits, err error) {
	d = Digits{0}

	for i := 0; i < len(hex); i++ {
		v := hexValues[hex[i]]
		if v < 0 {
			return nil, Error.New("invalid hex digit %q at %d", hex[i], i)
		}

		d = d.MulAdd(16, int(v))
	}

	return d, nil
}

// String returns the digits as text.
func (d Digits) String() string {
	if len(d) == 0 {
		return "0"
	}

	var sb strings.Builder
	sb.Grow(len(d))

	for _, v := range d {
		sb.WriteByte('0' + v)
	}

	return sb.String()
}
