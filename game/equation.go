package game

import (
	"fmt"
	"strings"
)

// The four lines scanned through a destination cell.
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// PlacedPiece pairs a piece with the cell it stood on when an equation was
// detected.
type PlacedPiece struct {
	Piece *Piece
	At    Coord
}

// EquationResult is one detected equation: its rendered form, its
// discriminant, and the pieces it removes.
type EquationResult struct {
	Equation     string
	Discriminant int
	RealRoots    bool          // Discriminant >= 0
	Removals     []PlacedPiece // The victim's chain pieces, in chain order
	Chain        []PlacedPiece // The full chain, end to end
}

// ResolveEquations scans the four lines through at and reports every chain
// that resolves into an equation with removals. Detection only: the board
// is not touched, and all four chains are read against the same
// pre-removal position. The mover is the owner of the piece on at.
func (g *Game) ResolveEquations(at Coord) []EquationResult {
	moved := g.Board.At(at.Row, at.Col)
	if moved == nil {
		return nil
	}
	var events []EquationResult
	for _, axis := range axes {
		chain := g.collectChain(at, axis[0], axis[1])
		if len(chain) < 2 {
			continue
		}
		if ev, ok := checkPolynomial(chain, moved.Owner); ok {
			events = append(events, ev)
		}
	}
	return events
}

// collectChain walks back to the start of the maximal contiguous run of
// pieces through at along (dr,dc), then collects it end to end.
func (g *Game) collectChain(at Coord, dr, dc int) []PlacedPiece {
	r, c := at.Row, at.Col
	for g.Board.At(r-dr, c-dc) != nil {
		r -= dr
		c -= dc
	}
	var chain []PlacedPiece
	for {
		p := g.Board.At(r, c)
		if p == nil {
			break
		}
		chain = append(chain, PlacedPiece{Piece: p, At: Coord{r, c}})
		r += dr
		c += dc
	}
	return chain
}

// checkPolynomial sums a chain into ax² + bx + c and decides its outcome.
// Chains owned by a single player never resolve, and without a quadratic
// contribution (a == 0) there is no equation to solve. Otherwise the sign
// of the discriminant picks the victim: real roots remove the opponent's
// chain pieces, complex roots backfire on the mover.
func checkPolynomial(chain []PlacedPiece, mover Player) (EquationResult, bool) {
	single := true
	for _, pp := range chain[1:] {
		if pp.Piece.Owner != chain[0].Piece.Owner {
			single = false
			break
		}
	}
	if single {
		return EquationResult{}, false
	}

	a, b, c := 0, 0, 0
	for _, pp := range chain {
		switch pp.Piece.Type {
		case Quadratic:
			a += pp.Piece.Value
		case Linear:
			b += pp.Piece.Value
		case Constant:
			c += pp.Piece.Value
		}
	}
	if a == 0 {
		return EquationResult{}, false
	}

	disc := b*b - 4*a*c
	victim := mover.Opponent()
	if disc < 0 {
		victim = mover // the equation backfires
	}

	var removals []PlacedPiece
	for _, pp := range chain {
		if pp.Piece.Owner == victim {
			removals = append(removals, pp)
		}
	}
	if len(removals) == 0 {
		return EquationResult{}, false
	}

	return EquationResult{
		Equation:     formatEquation(a, b, c),
		Discriminant: disc,
		RealRoots:    disc >= 0,
		Removals:     removals,
		Chain:        chain,
	}, true
}

// formatEquation renders ax² + bx + c = 0 with every term spelled out:
// "x² + 0x + 0 = 0", "-2x² - x + 3 = 0". Coefficients 1 and -1 are elided
// on the x² and x terms, zero coefficients stay visible.
func formatEquation(a, b, c int) string {
	var sb strings.Builder
	switch a {
	case 1:
		sb.WriteString("x²")
	case -1:
		sb.WriteString("-x²")
	default:
		fmt.Fprintf(&sb, "%dx²", a)
	}
	sb.WriteString(signedTerm(b, "x"))
	sb.WriteString(signedTerm(c, ""))
	sb.WriteString(" = 0")
	return sb.String()
}

// signedTerm renders one term with an explicit sign, eliding 1 and -1 in
// front of a symbol.
func signedTerm(v int, symbol string) string {
	sign := "+"
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v == 1 && symbol != "" {
		return fmt.Sprintf(" %s %s", sign, symbol)
	}
	return fmt.Sprintf(" %s %d%s", sign, v, symbol)
}
