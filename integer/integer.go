package integer

// Block is a signed integer in sign-magnitude form.
type Block struct {
	// Value is the big-endian magnitude. Zero is a single zero byte.
	Value    []byte
	Negative bool
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left one bit and the sign is stored in bit 0.
func (b Block) MarshalBinary() (data []byte, err error) {
	bits := append(unpack(b.Value), 0)
	if b.Negative {
		bits[len(bits)-1] = 1
	}

	return trimBytes(pack(bits)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer FormatError.WrapP(&err)

	if len(data) == 0 {
		return Error.New("empty data")
	}

	bits := unpack(data)

	b.Negative = bits[len(bits)-1] == 1
	b.Value = trimBytes(pack(bits[:len(bits)-1]))

	return nil
}

// Int returns the value of b.
func (b Block) Int() Int {
	bits := append([]byte{0}, unpack(b.Value)...)

	x := Int{bits: minimize(bits)}
	if b.Negative {
		return x.Neg()
	}

	return x
}

// Block returns the sign-magnitude form of x.
func (x Int) Block() Block {
	return Block{
		Value:    trimBytes(pack(x.magnitude())),
		Negative: x.negative(),
	}
}

// MarshalBinary implements encoding.BinaryMarshaler using the Block encoding.
func (x Int) MarshalBinary() (data []byte, err error) {
	return x.Block().MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	b := &Block{}

	err = b.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	*x = b.Int()

	return nil
}

// MarshalText implements encoding.TextMarshaler using decimal text.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}

// pack packs bits (most significant first) into big-endian bytes. The bits are
// right aligned: any padding is in the high bits of the first byte.
func pack(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)

	for i, v := range bits {
		j := len(bits) - 1 - i
		out[len(out)-1-j/8] |= v << (j % 8)
	}

	return out
}

// unpack returns the bits of data, most significant first.
func unpack(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)

	for _, c := range data {
		for j := 7; j >= 0; j-- {
			bits = append(bits, (c>>j)&1)
		}
	}

	return bits
}

// trimBytes removes leading zero bytes. Zero is kept as a single zero byte.
func trimBytes(data []byte) []byte {
	i := 0
	for i < len(data) && data[i] == 0 {
		i++
	}

	if i == len(data) {
		return []byte{0}
	}

	return data[i:]
}
