package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Game holds the full dynamic state of a match: the board, whose turn it
// is, and whether the game has been decided.
type Game struct {
	Board   *Board
	Current Player // The player to move
	Over    bool   // Set once the game is decided
	Won     Player // The winner; meaningful only when Over and not Drawn
	Drawn   bool   // Neither side won

	pending bool // A move produced removal events that are not committed yet
}

// NewGame starts a match from the standard layout with both armies on
// their home rows.
func NewGame() *Game {
	g := NewEmptyGame()
	setupStandard(g.Board)
	return g
}

// NewEmptyGame starts from a bare board. Useful for building positions.
func NewEmptyGame() *Game {
	return &Game{
		Board:   NewBoard(),
		Current: StartingPlayer,
	}
}

func (g *Game) Clone() *Game {
	return &Game{
		Board:   g.Board.Clone(),
		Current: g.Current,
		Over:    g.Over,
		Won:     g.Won,
		Drawn:   g.Drawn,
		pending: g.pending,
	}
}

// MovePiece relocates the piece on from to the empty cell to, then checks
// every line through the destination for equations. Whether the move was
// legal in the first place is the caller's concern; MovePiece only refuses
// structurally impossible relocations.
//
// When the move forms equations, the removals are NOT applied and the turn
// does NOT advance: the events come back with pending true and the caller
// commits them through CompleteTurn. Otherwise the turn advances right
// away.
func (g *Game) MovePiece(from, to Coord) ([]EquationResult, bool) {
	if g.Over || g.pending {
		return nil, false
	}
	if g.Board.At(from.Row, from.Col) == nil || !g.Board.IsEmpty(to.Row, to.Col) {
		return nil, false
	}
	g.Board.Relocate(from, to)
	events := g.ResolveEquations(to)
	if len(events) == 0 {
		g.switchTurn()
		return nil, false
	}
	g.pending = true
	return events, true
}

// CompleteTurn commits the removal events returned by MovePiece and
// advances the turn. It does nothing unless a move is pending, so stray
// calls are harmless.
func (g *Game) CompleteTurn(events []EquationResult) {
	if !g.pending {
		return
	}
	for _, ev := range events {
		for _, pp := range ev.Removals {
			// Overlapping chains may name the same cell twice; removing an
			// already empty cell is a no-op.
			g.Board.RemoveAt(pp.At.Row, pp.At.Col)
		}
	}
	g.pending = false
	g.switchTurn()
}

// switchTurn hands the turn to the opponent and settles the game: win and
// draw detection first, then stall handling. A player left with no legal
// moves forfeits the turn; if neither player can move the game is drawn.
func (g *Game) switchTurn() {
	g.Current = g.Current.Opponent()

	red := g.Board.CountFor(PlayerRed)
	blue := g.Board.CountFor(PlayerBlue)
	switch {
	case red == 0 && blue == 0:
		g.Over = true
		g.Drawn = true
		return
	case red == 0:
		g.Over = true
		g.Won = PlayerBlue
		return
	case blue == 0:
		g.Over = true
		g.Won = PlayerRed
		return
	}

	if len(g.LegalMoves()) == 0 {
		g.Current = g.Current.Opponent()
		if len(g.LegalMoves()) == 0 {
			g.Over = true
			g.Drawn = true
		}
	}
}

// ToggleTurn flips the player to move and nothing else: no win checks, no
// stall handling. Search uses it to hand the turn back and forth cheaply;
// regular play goes through MovePiece and CompleteTurn.
func (g *Game) ToggleTurn() {
	g.Current = g.Current.Opponent()
}

// LegalMoves returns every move available to the player to move.
func (g *Game) LegalMoves() []Move {
	if g.Over {
		return nil
	}
	var moves []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := g.Board.At(r, c)
			if p == nil || p.Owner != g.Current {
				continue
			}
			for _, to := range g.ValidMoves(r, c) {
				moves = append(moves, Move{From: Coord{r, c}, To: to})
			}
		}
	}
	return moves
}

// Winner reports the winning player once the game is over. ok is false
// while the game runs and for drawn games.
func (g *Game) Winner() (Player, bool) {
	return g.Won, g.Over && !g.Drawn
}

// PieceCount tallies the pieces a player has left.
func (g *Game) PieceCount(p Player) int {
	return g.Board.CountFor(p)
}

// CellInfo is one occupied cell in a board snapshot.
type CellInfo struct {
	Row, Col int
	Player   Player
	Type     PieceType
	Value    int
	Label    string
}

// Snapshot lists every occupied cell, row by row. It is a read-only view
// for rendering and logging; mutating it does not touch the game.
func (g *Game) Snapshot() []CellInfo {
	var cells []CellInfo
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := g.Board.At(r, c)
			if p == nil {
				continue
			}
			cells = append(cells, CellInfo{
				Row:    r,
				Col:    c,
				Player: p.Owner,
				Type:   p.Type,
				Value:  p.Value,
				Label:  p.Label(),
			})
		}
	}
	return cells
}

// Hash folds the position and the player to move into a single fnv64a sum.
func (g *Game) Hash() uint64 {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(g.Current))

	for _, p := range g.Board.cells {
		if p == nil {
			binary.Write(hasher, binary.LittleEndian, int64(-1))
			continue
		}
		binary.Write(hasher, binary.LittleEndian, int64(p.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(p.Type))
		binary.Write(hasher, binary.LittleEndian, int64(p.Value))
	}

	return hasher.Sum64()
}
