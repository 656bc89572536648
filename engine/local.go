package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"quadra/experiments/metrics"
	"quadra/game"
	"quadra/searcher/agent"
)

// LocalEngine runs both agents in-process on a shared game.
type LocalEngine struct {
	Game     *game.Game
	Red      agent.Agent
	Blue     agent.Agent
	MaxMoves int
}

func NewLocalEngine(red, blue agent.Agent) *LocalEngine {
	if red == nil || blue == nil {
		panic("both agents are required")
	}
	return &LocalEngine{
		Game:     game.NewGame(),
		Red:      red,
		Blue:     blue,
		MaxMoves: MaxMoves,
	}
}

func (e *LocalEngine) agentFor(p game.Player) agent.Agent {
	if p == game.PlayerRed {
		return e.Red
	}
	return e.Blue
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gm := metrics.GameMetric{
		StartingPlayer: e.Game.Current.String(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("%v is starting", e.Game.Current)

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.Game.Over && step < e.MaxMoves {
		current := e.Game.Current
		move, met, ok := e.agentFor(current).FindMove(e.Game)
		if !ok {
			break
		}

		events, pending := e.Game.MovePiece(move.From, move.To)
		mm := metrics.MoveMetric{
			Step:    step + 1,
			Player:  current.String(),
			Move:    move.String(),
			Metrics: met,
		}
		if pending {
			for _, event := range events {
				mm.Equations++
				if !event.RealRoots {
					mm.Backfire = true
					gm.Backfires++
				}
				log.Info().Msgf("%v forms %s with discriminant %d, removing %d %v pieces",
					current, event.Equation, event.Discriminant, len(event.Removals), event.Removals[0].Piece.Owner)
			}
			// Removal lists overlap when several axes backfire on the
			// mover's cell, so tally the pieces that actually leave.
			before := e.Game.PieceCount(game.PlayerRed) + e.Game.PieceCount(game.PlayerBlue)
			e.Game.CompleteTurn(events)
			mm.Removed = before - e.Game.PieceCount(game.PlayerRed) - e.Game.PieceCount(game.PlayerBlue)
		}
		step++
		moveMetrics = append(moveMetrics, mm)
		gm.Equations += mm.Equations
		gm.PiecesRemoved += mm.Removed

		if !e.Game.Over && e.Game.Current == current {
			log.Info().Msgf("%v has no moves and passes", current.Opponent())
		}
	}

	gm.EndTime = time.Now()
	gm.Duration = gm.EndTime.Sub(gm.StartTime)
	gm.TotalMoves = step

	winner := ""
	if w, ok := e.Game.Winner(); ok {
		winner = w.String()
	} else if e.Game.Over {
		winner = "Draw"
	}
	gm.Winner = winner
	return winner, gm, moveMetrics
}
