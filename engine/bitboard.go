package engine

import "math/bits"

// Bitboard is a 64-bit set of squares; bit i set iff square i is a member
// (spec §3). Iteration, popcount and pop-lsb are expressed directly on
// top of math/bits so the compiler can lower them to the hardware
// TZCNT/POPCNT intrinsics the spec's design notes call for, with the
// de-Bruijn-table fallback math/bits already provides on platforms
// without them.
type Bitboard uint64

// Set returns the bitboard with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << uint(sq))
}

// Clear returns the bitboard with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << uint(sq))
}

// Test reports whether sq is a member.
func (b Bitboard) Test(sq Square) bool {
	return b&(1<<uint(sq)) != 0
}

// Count returns the population count.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the square of the least significant set bit. Calling LSB on
// an empty bitboard returns 64 (no valid square); callers must check
// b != 0 first, matching the teacher's own popLSB contract.
func (b Bitboard) LSB() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB clears and returns the least significant set square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty reports whether the bitboard has no members.
func (b Bitboard) Empty() bool {
	return b == 0
}

// squareBB is a precomputed table of single-bit bitboards, avoiding a
// shift at every call site that only ever needs "the bit for this square".
var squareBB [64]Bitboard

func init() {
	for sq := Square(0); sq < 64; sq++ {
		squareBB[sq] = 1 << uint(sq)
	}
}

// SquareBB returns the singleton bitboard for sq.
func SquareBB(sq Square) Bitboard {
	return squareBB[sq]
}

// Pawn-structure masks (spec §4.1), derived once at startup.
var (
	fileMask     [8]Bitboard
	rankMask     [8]Bitboard
	isolatedMask [64]Bitboard
	passedMask   [2][64]Bitboard // indexed by Color
)

func init() {
	for f := 0; f < 8; f++ {
		var m Bitboard
		for r := 0; r < 8; r++ {
			m = m.Set(MakeSquare(f, r))
		}
		fileMask[f] = m
	}
	for r := 0; r < 8; r++ {
		var m Bitboard
		for f := 0; f < 8; f++ {
			m = m.Set(MakeSquare(f, r))
		}
		rankMask[r] = m
	}
	for sq := Square(0); sq < 64; sq++ {
		f := sq.File()
		var m Bitboard
		if f > 0 {
			m |= fileMask[f-1]
		}
		if f < 7 {
			m |= fileMask[f+1]
		}
		isolatedMask[sq] = m
	}
	for sq := Square(0); sq < 64; sq++ {
		f, r := sq.File(), sq.Rank()
		var files Bitboard = fileMask[f]
		if f > 0 {
			files |= fileMask[f-1]
		}
		if f < 7 {
			files |= fileMask[f+1]
		}
		var whiteAhead, blackAhead Bitboard
		for rr := r + 1; rr < 8; rr++ {
			whiteAhead |= rankMask[rr]
		}
		for rr := r - 1; rr >= 0; rr-- {
			blackAhead |= rankMask[rr]
		}
		passedMask[White][sq] = files & whiteAhead
		passedMask[Black][sq] = files & blackAhead
	}
}

// FileMask returns all squares on the given 0..7 file.
func FileMask(file int) Bitboard { return fileMask[file] }

// RankMask returns all squares on the given 0..7 rank.
func RankMask(rank int) Bitboard { return rankMask[rank] }

// IsolatedMask returns the squares on the files adjacent to sq's file.
func IsolatedMask(sq Square) Bitboard { return isolatedMask[sq] }

// PassedMask returns the squares on sq's own and adjacent files, strictly
// ahead of sq for the given color.
func PassedMask(c Color, sq Square) Bitboard { return passedMask[c][sq] }
