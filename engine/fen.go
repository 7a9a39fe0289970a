package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPosition is the standard chess starting position.
const FENStartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENKiwipete is the tricky perft/movegen stress position named in spec §8.
const FENKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// SetFEN loads the six-field Forsyth-Edwards position fields into the
// board (spec §6): piece placement, side to move, castling rights, en
// passant target, and optionally the half-move clock and full-move
// number. Parse failures are reported, never panicked (spec §7): the
// board is left unmodified on error.
func (b *Board) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("engine: FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	var nb Board
	nb.epSquare = NoSquare

	rank, file := Rank8, FileA
	for _, r := range fields[0] {
		switch {
		case r == '/':
			rank--
			file = FileA
		case r >= '1' && r <= '8':
			file += int(r - '0')
		default:
			p, ok := PieceFromRune(r)
			if !ok {
				return fmt.Errorf("engine: FEN %q: invalid piece character %q", fen, r)
			}
			if rank < 0 || file > 7 {
				return fmt.Errorf("engine: FEN %q: piece placement overflows the board", fen)
			}
			nb.setSquare(MakeSquare(file, rank), p)
			file++
		}
	}

	switch fields[1] {
	case "w":
		nb.sideToMove = White
	case "b":
		nb.sideToMove = Black
	default:
		return fmt.Errorf("engine: FEN %q: invalid side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				nb.castleRights |= CastleWK
			case 'Q':
				nb.castleRights |= CastleWQ
			case 'k':
				nb.castleRights |= CastleBK
			case 'q':
				nb.castleRights |= CastleBQ
			default:
				return fmt.Errorf("engine: FEN %q: invalid castling field %q", fen, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return fmt.Errorf("engine: FEN %q: invalid en passant square %q", fen, fields[3])
		}
		nb.epSquare = sq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("engine: FEN %q: invalid half-move clock: %w", fen, err)
		}
		nb.fiftyMove = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("engine: FEN %q: invalid full-move number: %w", fen, err)
		}
		nb.histPly = (n - 1) * 2
		if nb.sideToMove == Black {
			nb.histPly++
		}
	}

	nb.hash = zobristHash(&nb)
	nb.pvTable = make(map[uint64]Move, 1<<14)
	nb.killers = make([][2]Move, maxKillerPly)
	*b = nb
	if debugAssertions {
		b.assertConsistent()
	}
	return nil
}

// FEN renders the current position as a six-field FEN string, the
// inverse of SetFEN (spec §8: "FEN -> Board -> FEN round-trip").
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		empty := 0
		for file := FileA; file <= FileH; file++ {
			p := b.pieceAt[MakeSquare(file, rank)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(p.Rune())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castleRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castleRights&CastleWK != 0 {
			sb.WriteByte('K')
		}
		if b.castleRights&CastleWQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castleRights&CastleBK != 0 {
			sb.WriteByte('k')
		}
		if b.castleRights&CastleBQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.epSquare.String())
	}

	fullMove := b.histPly/2 + 1
	fmt.Fprintf(&sb, " %d %d", b.fiftyMove, fullMove)
	return sb.String()
}
