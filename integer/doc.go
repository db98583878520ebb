// Package integer provides signed integers of arbitrary size stored as
// two's-complement bit sequences.
//
// Representation
//
// An Int is a sequence of bits, most significant first. The first bit is the
// sign bit (0 for non-negative, 1 for negative) and the whole sequence is read
// as a two's-complement number. Values are kept minimal: the sign bit is never
// followed by a redundant copy of itself.
//
//  | Value | Bits  |
//  |-------|-------|
//  |     0 | 0     |
//  |    -1 | 1     |
//  |     2 | 010   |
//  |    -2 | 10    |
//  |     5 | 0101  |
//  |    -5 | 1011  |
//
// Operands of different widths are aligned by sign extension on private
// copies, so no operation changes the values it is given.
//
// Arithmetic
//
// Add ripple-carry adds both operands at one bit wider than the wider of the
// two, so the carry out of the sign position is never lost. Neg decrements
// and inverts. Sub adds the negation. Mul is Booth's algorithm over a register
// twice as wide as the sum of the operand widths; it is quadratic in the
// number of bits.
//
// Text
//
// Parse reads decimal text by repeated long division by two. String renders
// through hex: the magnitude is split into nibbles and the hex digits are
// folded into a decimal digit vector. TwosComplement returns the bits
// themselves.
//
// Encoding
//
// Block is the sign-magnitude form of an Int. Its binary encoding is
// big-endian with a trailing sign bit (aka zigzag):
//
//  |   Value | Encoded            |
//  |---------|--------------------|
//  |      +0 | 0000_0000          |
//  |      +1 | 0000_0010          |
//  |      -1 | 0000_0011          |
//  |    +127 | 1111_1110          |
//  |    -127 | 1111_1111          |
//  |  +32767 | 1111_1111 1111_1110|
package integer
