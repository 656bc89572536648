package experiments

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"quadra/config"
	"quadra/experiments/metrics"
)

const ladderTopDepth = 4

// RunDepthLadder pits a depth-1 baseline against increasingly deep
// searchers to measure what the extra depth buys.
func RunDepthLadder(cfg config.Config) error {
	// Each matchup pairs an agent against the baseline shallow agent
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: 1}
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for d := 1; d <= ladderTopDepth; d++ {
		c := metrics.AgentConfig{ID: d, Kind: "minimax", Depth: d}
		configs = append(configs, c)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, c})
	}

	log.Info().Msg("starting depth ladder experiment...")
	gameRecords, moveRecords := playMatchUps(matchUps, cfg)
	log.Info().Msg("completed depth ladder experiment")

	return store(filepath.Join(cfg.OutputDir, "depth_ladder"), append(configs, baseline), gameRecords, moveRecords)
}
