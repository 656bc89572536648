package game

import "fmt"

// Player identifies one of the two sides.
type Player int

const (
	PlayerRed Player = iota
	PlayerBlue
)

// StartingPlayer opens every game. Blue moves first.
const StartingPlayer = PlayerBlue

func (p Player) Opponent() Player {
	if p == PlayerRed {
		return PlayerBlue
	}
	return PlayerRed
}

// ForwardDir is the row direction a player's pieces advance in: Red starts
// on the low rows and pushes up, Blue pushes down.
func (p Player) ForwardDir() int {
	if p == PlayerRed {
		return 1
	}
	return -1
}

func (p Player) String() string {
	if p == PlayerRed {
		return "Red"
	}
	return "Blue"
}

// PieceType classifies a piece by the polynomial term it contributes.
type PieceType int

const (
	Quadratic PieceType = iota
	Linear
	Constant
)

func (t PieceType) String() string {
	switch t {
	case Quadratic:
		return "Quadratic"
	case Linear:
		return "Linear"
	default:
		return "Constant"
	}
}

// Piece is a single term on the board. Owner, type and value never change
// once the piece exists; movement relocates the same piece.
type Piece struct {
	Owner Player
	Type  PieceType
	Value int
}

// Label renders the piece as the term it contributes: "3x²", "-x", "0x", "7".
// Coefficients 1 and -1 are elided on the x² and x terms, zero is kept.
func (p *Piece) Label() string {
	switch p.Type {
	case Quadratic:
		switch p.Value {
		case 1:
			return "x²"
		case -1:
			return "-x²"
		default:
			return fmt.Sprintf("%dx²", p.Value)
		}
	case Linear:
		switch p.Value {
		case 1:
			return "x"
		case -1:
			return "-x"
		default:
			return fmt.Sprintf("%dx", p.Value)
		}
	default:
		return fmt.Sprintf("%d", p.Value)
	}
}
