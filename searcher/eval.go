package searcher

import "quadra/game"

// Material weights per piece type, plus a small bonus per row of forward
// progress.
const (
	quadraticWeight = 50
	linearWeight    = 30
	constantWeight  = 10
	advanceWeight   = 2
)

// Evaluate scores the position for the perspective player: material and
// advancement, counted positively for the perspective player's pieces and
// negatively for the opponent's. Swapping the perspective negates the
// score.
func Evaluate(g *game.Game, perspective game.Player) int {
	score := 0
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			p := g.Board.At(r, c)
			if p == nil {
				continue
			}
			value := pieceWeight(p.Type) + advanceWeight*progress(p.Owner, r)
			if p.Owner == perspective {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}

func pieceWeight(t game.PieceType) int {
	switch t {
	case game.Quadratic:
		return quadraticWeight
	case game.Linear:
		return linearWeight
	default:
		return constantWeight
	}
}

// progress counts the rows a piece has crossed toward the far side.
func progress(owner game.Player, row int) int {
	if owner == game.PlayerRed {
		return row
	}
	return game.Rows - 1 - row
}
