package searcher

import (
	"time"

	"quadra/game"
)

// infiniteScore sits outside any reachable evaluation and bounds the
// alpha-beta window.
const infiniteScore = 1 << 30

// DefaultDepth bounds the recursion when no option overrides it.
const DefaultDepth = 3

type Option func(m *Minimax)

// WithDepth sets how many plies ahead the search looks.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// Minimax is a depth-limited minimax searcher with alpha-beta pruning. It
// works destructively on the game it is given: every candidate move is
// applied to the live board and reverted exactly afterwards, so no
// position is ever deep copied. Pruning never changes the chosen score,
// only how much of the tree is visited.
type Minimax struct {
	depth int
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{depth: DefaultDepth}
	for _, option := range options {
		option(m)
	}
	return m
}

// Metrics describes a single FindMove invocation.
type Metrics struct {
	Depth    int
	Score    int
	Nodes    int
	Cutoffs  int
	Duration time.Duration
}

// FindMove returns the best move for the player to move, who stays the
// maximizing perspective for the whole recursion. ok is false when the
// position offers no moves.
func (m *Minimax) FindMove(g *game.Game) (game.Move, Metrics, bool) {
	start := time.Now()
	met := Metrics{Depth: m.depth}

	moves := g.LegalMoves()
	if len(moves) == 0 {
		met.Duration = time.Since(start)
		return game.Move{}, met, false
	}

	perspective := g.Current
	best := moves[0]
	alpha, beta := -infiniteScore, infiniteScore
	for _, move := range moves {
		u := applyMove(g, move)
		g.ToggleTurn()
		score := m.search(g, m.depth-1, alpha, beta, perspective, &met)
		g.ToggleTurn()
		u.revert(g)

		if score > alpha {
			alpha = score
			best = move
		}
	}

	met.Score = alpha
	met.Duration = time.Since(start)
	return best, met, true
}

// search scores the position for the perspective player. Whether a level
// maximizes or minimizes follows from whose turn it is at that node.
func (m *Minimax) search(g *game.Game, depth, alpha, beta int, perspective game.Player, met *Metrics) int {
	met.Nodes++

	if depth == 0 || g.PieceCount(game.PlayerRed) == 0 || g.PieceCount(game.PlayerBlue) == 0 {
		return Evaluate(g, perspective)
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		// The player to move is stuck; score the position as it stands.
		return Evaluate(g, perspective)
	}

	maximizing := g.Current == perspective
	for _, move := range moves {
		u := applyMove(g, move)
		g.ToggleTurn()
		score := m.search(g, depth-1, alpha, beta, perspective, met)
		g.ToggleTurn()
		u.revert(g)

		if maximizing {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			met.Cutoffs++
			break
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}
