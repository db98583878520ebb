// Package decimal provides base 10 digit vectors for converting between
// decimal text and binary.
//
// A digit vector holds one decimal digit (0-9) per byte, most significant
// digit first:
//
//  "1204" = Digits{1, 2, 0, 4}
//
// Decimal to Binary
//
// Binary digits are produced least significant first by repeated long
// division by two. Odd reports the next bit and Half replaces the vector with
// its quotient:
//
//  13 -> odd  -> 1
//   6 -> even -> 0
//   3 -> odd  -> 1
//   1 -> odd  -> 1
//   0
//
// Hex to Decimal
//
// FromHex walks the hex digits left to right. For each one the vector is
// multiplied by 16 and the hex value is added, with carries propagating from
// the rightmost digit leftward. A carry left over after the leftmost digit
// grows the vector at its most significant end.
package decimal
