package experiments

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quadra/config"
	"quadra/engine"
	"quadra/experiments/metrics"
	"quadra/searcher"
	"quadra/searcher/agent"
)

// Run plays the configured red-versus-blue match and stores the
// records under the output directory.
func Run(cfg config.Config) error {
	configs := []metrics.AgentConfig{
		agentConfig(1, cfg.Red),
		agentConfig(2, cfg.Blue),
	}
	matchUps := [][2]metrics.AgentConfig{{configs[0], configs[1]}}

	log.Info().Msg("starting match experiment...")
	gameRecords, moveRecords := playMatchUps(matchUps, cfg)
	log.Info().Msg("completed match experiment")

	return store(filepath.Join(cfg.OutputDir, "match"), configs, gameRecords, moveRecords)
}

// playMatchUps runs cfg.Games games for each matchup. The first agent of a
// matchup plays red, except in odd games when cfg.Alternate swaps the colors.
func playMatchUps(matchUps [][2]metrics.AgentConfig, cfg config.Config) ([]metrics.GameRecord, []metrics.MoveRecord) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < cfg.Games; i++ {
			red, blue := matchup[0], matchup[1]
			if cfg.Alternate && i%2 == 1 {
				red, blue = blue, red
			}

			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, cfg.Games)

			winner, gameMetric, moveMetrics := newEngine(red, blue, cfg.MaxMoves).Run()
			id := uuid.NewString()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     red.ID,
				Agent2:     blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}
	return gameRecords, moveRecords
}

func store(root string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %d game and %d move records under %s", len(gameRecords), len(moveRecords), writer.BaseDir())

	return nil
}

// newEngine wires both agents into a fresh engine for a single game
func newEngine(red, blue metrics.AgentConfig, maxMoves int) engine.Engine {
	e := engine.NewLocalEngine(buildAgent(red), buildAgent(blue))
	if maxMoves > 0 {
		e.MaxMoves = maxMoves
	}
	return e
}

func agentConfig(id int, spec config.AgentSpec) metrics.AgentConfig {
	return metrics.AgentConfig{ID: id, Kind: spec.Kind, Depth: spec.Depth, Seed: spec.Seed}
}

func buildAgent(c metrics.AgentConfig) agent.Agent {
	if c.Kind == "random" {
		return agent.NewRandomAgent(c.Seed)
	}

	options := []searcher.Option{}
	if c.Depth > 0 {
		options = append(options, searcher.WithDepth(c.Depth))
	}
	return agent.NewMinimaxAgent(searcher.NewMinimax(options...))
}
