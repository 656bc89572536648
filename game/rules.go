package game

// Movement ranges per piece type.
const (
	quadraticRange = 3
	linearRange    = 2
)

var allDirections = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}}

var orthogonalDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ValidMoves returns every destination the piece on (r,c) may move to. The
// result is empty when the cell is out of bounds or empty, when the piece
// belongs to the opponent, or when the game is over. Quadratics slide up to
// three cells in all eight directions, linears up to two cells
// orthogonally, constants step exactly one cell straight ahead.
func (g *Game) ValidMoves(r, c int) []Coord {
	if g.Over {
		return nil
	}
	p := g.Board.At(r, c)
	if p == nil || p.Owner != g.Current {
		return nil
	}
	switch p.Type {
	case Quadratic:
		return rayMoves(g.Board, r, c, allDirections[:], quadraticRange)
	case Linear:
		return rayMoves(g.Board, r, c, orthogonalDirections[:], linearRange)
	default:
		return constantMoves(g.Board, p, r, c)
	}
}

// rayMoves walks each direction up to maxSteps cells, stopping at the edge
// or the first occupied cell. Occupied cells are never destinations: there
// is no capture by displacement.
func rayMoves(b *Board, r, c int, directions [][2]int, maxSteps int) []Coord {
	var moves []Coord
	for _, d := range directions {
		for step := 1; step <= maxSteps; step++ {
			rr := r + d[0]*step
			cc := c + d[1]*step
			if !b.IsEmpty(rr, cc) {
				break
			}
			moves = append(moves, Coord{rr, cc})
		}
	}
	return moves
}

// constantMoves: one step straight ahead, never sideways or back.
func constantMoves(b *Board, p *Piece, r, c int) []Coord {
	rr := r + p.Owner.ForwardDir()
	if !b.IsEmpty(rr, c) {
		return nil
	}
	return []Coord{{rr, c}}
}
