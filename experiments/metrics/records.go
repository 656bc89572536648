package metrics

import (
	"time"

	"quadra/searcher"
)

// AgentConfig describes one configured agent in an experiment run.
type AgentConfig struct {
	ID    int
	Kind  string // "minimax" or "random"
	Depth int    // Search depth; zero for random agents
	Seed  uint64 // RNG seed; zero for minimax agents
}

// MoveMetric captures one committed move along with the search that chose it.
type MoveMetric struct {
	Step      int
	Player    string
	Move      string
	Equations int  // Equation events resolved by this move
	Backfire  bool // At least one equation removed the mover's own pieces
	Removed   int  // Pieces taken off the board
	searcher.Metrics
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	StartingPlayer string
	Winner         string // "Red", "Blue", "Draw", or "" when the move cap was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Equations      int
	Backfires      int
	PiecesRemoved  int
}

type GameRecord struct {
	ID     string // Game UUID
	Agent1 int    // AgentConfig.ID playing Red
	Agent2 int    // AgentConfig.ID playing Blue
	GameMetric
}

type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}

// gameRow is the parquet projection of a GameRecord.
type gameRow struct {
	GameID         string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Agent1         int32  `parquet:"name=agent1, type=INT32"`
	Agent2         int32  `parquet:"name=agent2, type=INT32"`
	StartingPlayer string `parquet:"name=starting_player, type=BYTE_ARRAY, convertedtype=UTF8"`
	Winner         string `parquet:"name=winner, type=BYTE_ARRAY, convertedtype=UTF8"`
	StartTime      string `parquet:"name=start_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	EndTime        string `parquet:"name=end_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	DurationMs     int64  `parquet:"name=duration_ms, type=INT64"`
	TotalMoves     int32  `parquet:"name=total_moves, type=INT32"`
	Equations      int32  `parquet:"name=equations, type=INT32"`
	Backfires      int32  `parquet:"name=backfires, type=INT32"`
	PiecesRemoved  int32  `parquet:"name=pieces_removed, type=INT32"`
}

// moveRow is the parquet projection of a MoveRecord.
type moveRow struct {
	GameID     string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Step       int32  `parquet:"name=step, type=INT32"`
	Player     string `parquet:"name=player, type=BYTE_ARRAY, convertedtype=UTF8"`
	Move       string `parquet:"name=move, type=BYTE_ARRAY, convertedtype=UTF8"`
	Equations  int32  `parquet:"name=equations, type=INT32"`
	Backfire   bool   `parquet:"name=backfire, type=BOOLEAN"`
	Removed    int32  `parquet:"name=removed, type=INT32"`
	Depth      int32  `parquet:"name=depth, type=INT32"`
	Score      int32  `parquet:"name=score, type=INT32"`
	Nodes      int64  `parquet:"name=nodes, type=INT64"`
	Cutoffs    int64  `parquet:"name=cutoffs, type=INT64"`
	DurationUs int64  `parquet:"name=duration_us, type=INT64"`
}

func toGameRow(r GameRecord) gameRow {
	return gameRow{
		GameID:         r.ID,
		Agent1:         int32(r.Agent1),
		Agent2:         int32(r.Agent2),
		StartingPlayer: r.StartingPlayer,
		Winner:         r.Winner,
		StartTime:      r.StartTime.Format(time.RFC3339),
		EndTime:        r.EndTime.Format(time.RFC3339),
		DurationMs:     r.Duration.Milliseconds(),
		TotalMoves:     int32(r.TotalMoves),
		Equations:      int32(r.Equations),
		Backfires:      int32(r.Backfires),
		PiecesRemoved:  int32(r.PiecesRemoved),
	}
}

func toMoveRow(r MoveRecord) moveRow {
	return moveRow{
		GameID:     r.Game,
		Step:       int32(r.Step),
		Player:     r.Player,
		Move:       r.Move,
		Equations:  int32(r.Equations),
		Backfire:   r.Backfire,
		Removed:    int32(r.Removed),
		Depth:      int32(r.Depth),
		Score:      int32(r.Score),
		Nodes:      int64(r.Nodes),
		Cutoffs:    int64(r.Cutoffs),
		DurationUs: r.Metrics.Duration.Microseconds(),
	}
}
