package blitzmg

import "math/bits"

// Squares are indexed rank-major: a1=0, b1=1, ... h1=7, a2=8, ... h8=63.
// A bitboard is a uint64 with one bit per square in that order.

// File and rank masks.
const (
	FileA uint64 = 0x0101010101010101
	FileH uint64 = 0x8080808080808080
	Rank1 uint64 = 0x00000000000000FF
	Rank2 uint64 = 0x000000000000FF00
	Rank7 uint64 = 0x00FF000000000000
	Rank8 uint64 = 0xFF00000000000000
)

// Square indexes a board cell, 0-63.
type Square int

const NoSquare Square = -1

// SquareFrom builds a square from file and rank indices (both 0-7).
func SquareFrom(file, rank int) Square { return Square(rank*8 + file) }

// File returns the file index (0 = a-file).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank index (0 = first rank).
func (sq Square) Rank() int { return int(sq) / 8 }

// String returns coordinate notation ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// PopCount returns the number of set bits.
func PopCount(mask uint64) int { return bits.OnesCount64(mask) }

// LSB returns the index of the lowest set bit, 64 if the mask is empty.
func LSB(mask uint64) int { return bits.TrailingZeros64(mask) }

// bb returns the single-bit mask for sq.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB clears the lowest set bit of mask and returns its index.
func popLSB(mask *uint64) int {
	x := *mask & -(*mask)
	idx := bits.TrailingZeros64(x)
	*mask &= *mask - 1
	return idx
}
