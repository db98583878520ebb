package integer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calebcase/twos/decimal"
)

// Parse returns the Int for the decimal text s.
//
// The accepted forms are an optionally signed run of digits ("42", "-42",
// "+42") or a sign and digits separated by whitespace ("- 42"). Surrounding
// whitespace is ignored. Anything else fails with a FormatError.
func Parse(s string) (x Int, err error) {
	parts := strings.Fields(s)

	switch {
	case len(parts) == 0:
		return x, FormatError.New("empty input")
	case len(parts) > 2:
		return x, FormatError.New("too many parts: %q", s)
	case len(parts) == 2 && parts[0] != "+" && parts[0] != "-":
		return x, FormatError.New("invalid sign: %q", parts[0])
	}

	number := strings.Join(parts, "")

	negative := number[0] == '-'
	if number[0] == '+' || number[0] == '-' {
		number = number[1:]
	}

	d, err := decimal.Parse(number)
	if err != nil {
		return x, FormatError.Wrap(err)
	}

	return fromDigits(d, negative), nil
}

// fromDigits converts a decimal magnitude to its two's-complement bits.
func fromDigits(d decimal.Digits, negative bool) Int {
	// Bits come out least significant first.
	var lsb []byte
	for !d.IsZero() {
		if d.Odd() {
			lsb = append(lsb, 1)
		} else {
			lsb = append(lsb, 0)
		}

		d = d.Half()
	}

	// One extra leading bit for the sign.
	bits := make([]byte, len(lsb)+1)
	for i, v := range lsb {
		bits[len(bits)-1-i] = v
	}

	if negative {
		for i := range bits {
			bits[i] ^= 1
		}

		carry := byte(1)
		for i := len(bits) - 1; i >= 0 && carry == 1; i-- {
			v := bits[i] + carry
			bits[i] = v & 1
			carry = v >> 1
		}
	}

	return Int{bits: minimize(bits)}
}

// MustParse is like Parse but panics if s is not valid.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return x
}

// NewInt returns the Int for v.
func NewInt(v int64) Int {
	return MustParse(strconv.FormatInt(v, 10))
}
