package integer

import (
	"strings"

	"github.com/calebcase/twos/decimal"
)

const hexDigits = "0123456789ABCDEF"

// magnitude returns the bits of |x| with a leading 0 sign bit.
func (x Int) magnitude() []byte {
	if x.negative() {
		return minimize(negate(x.seq()))
	}

	return x.seq()
}

// hex returns |x| as upper case hex digits. The magnitude always has a 0 sign
// bit, so sign extension pads it with zeros to a whole number of nibbles.
func (x Int) hex() string {
	m := x.magnitude()

	pad := (4 - len(m)%4) % 4
	m = resize(m, len(m)+pad)

	var sb strings.Builder
	sb.Grow(len(m) / 4)

	for i := 0; i < len(m); i += 4 {
		n := m[i]<<3 | m[i+1]<<2 | m[i+2]<<1 | m[i+3]
		sb.WriteByte(hexDigits[n])
	}

	return sb.String()
}

// String returns the decimal representation of x.
func (x Int) String() string {
	d, err := decimal.FromHex(x.hex())
	if err != nil {
		// hex only produces digits from hexDigits.
		panic(err)
	}

	if x.negative() {
		return "-" + d.String()
	}

	return d.String()
}

// TwosComplement returns the minimal two's-complement binary representation
// of x, e.g. 0 is "0", -1 is "1", 2 is "010" and -2 is "10".
func (x Int) TwosComplement() string {
	b := x.seq()

	var sb strings.Builder
	sb.Grow(len(b))

	for _, v := range b {
		sb.WriteByte('0' + v)
	}

	return sb.String()
}
