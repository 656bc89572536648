package agent

import (
	"quadra/game"
	"quadra/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal
// moves. The same seed reproduces the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(g *game.Game) (game.Move, searcher.Metrics, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.Metrics{}, false
	}
	return moves[a.rng.Intn(len(moves))], searcher.Metrics{}, true
}
