package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := NewGame()

	t.Run("filling both home sides", func(t *testing.T) {
		require.Equal(t, 24, g.PieceCount(PlayerRed), "Red should start with three full rows")
		require.Equal(t, 24, g.PieceCount(PlayerBlue), "Blue should start with three full rows")
		for r := 3; r <= 5; r++ {
			for c := 0; c < Cols; c++ {
				require.Nil(t, g.Board.At(r, c), "Middle rows should start empty")
			}
		}
	})

	t.Run("laying out ranks by piece type", func(t *testing.T) {
		for c := 0; c < Cols; c++ {
			require.Equal(t, Quadratic, g.Board.At(0, c).Type, "Red back rank should hold quadratics")
			require.Equal(t, Linear, g.Board.At(1, c).Type, "Red middle rank should hold linears")
			require.Equal(t, Constant, g.Board.At(2, c).Type, "Red front rank should hold constants")
			require.Equal(t, Quadratic, g.Board.At(8, c).Type, "Blue back rank should hold quadratics")
			require.Equal(t, Linear, g.Board.At(7, c).Type, "Blue middle rank should hold linears")
			require.Equal(t, Constant, g.Board.At(6, c).Type, "Blue front rank should hold constants")
		}
	})

	t.Run("mirroring the two armies through the board center", func(t *testing.T) {
		mirrored := [3][2]int{{0, 8}, {1, 7}, {2, 6}}
		for _, rows := range mirrored {
			for c := 0; c < Cols; c++ {
				red := g.Board.At(rows[0], c)
				blue := g.Board.At(rows[1], Cols-1-c)
				require.Equal(t, red.Value, blue.Value,
					"Mirrored cells (%d,%d) and (%d,%d) should hold the same value", rows[0], c, rows[1], Cols-1-c)
			}
		}
	})

	t.Run("opening with the starting player", func(t *testing.T) {
		require.Equal(t, StartingPlayer, g.Current)
		require.False(t, g.Over)
	})

	t.Run("reproducing the same position every time", func(t *testing.T) {
		require.Equal(t, NewGame().Hash(), NewGame().Hash(), "Fresh games should hash identically")
	})
}

func TestMovePiece(t *testing.T) {
	t.Run("advancing the turn on a quiet move", func(t *testing.T) {
		g := NewGame()

		events, pending := g.MovePiece(Coord{6, 3}, Coord{5, 3})

		require.Empty(t, events, "Opening constant push should form no equations")
		require.False(t, pending)
		require.Equal(t, PlayerRed, g.Current, "Turn should pass to the opponent")
		require.NotNil(t, g.Board.At(5, 3), "Piece should sit on the destination")
		require.Nil(t, g.Board.At(6, 3), "Origin should be empty")
	})

	t.Run("rejecting a move from an empty cell", func(t *testing.T) {
		g := NewGame()
		before := g.Hash()

		events, pending := g.MovePiece(Coord{4, 4}, Coord{4, 5})

		require.Empty(t, events)
		require.False(t, pending)
		require.Equal(t, before, g.Hash(), "Rejected move should leave the game untouched")
	})

	t.Run("rejecting a move onto an occupied cell", func(t *testing.T) {
		g := NewGame()
		before := g.Hash()

		events, pending := g.MovePiece(Coord{6, 3}, Coord{7, 3})

		require.Empty(t, events)
		require.False(t, pending)
		require.Equal(t, before, g.Hash(), "Rejected move should leave the game untouched")
	})

	t.Run("rejecting moves once the game is over", func(t *testing.T) {
		g := NewGame()
		g.Over = true
		before := g.Hash()

		_, pending := g.MovePiece(Coord{6, 3}, Coord{5, 3})

		require.False(t, pending)
		require.Equal(t, before, g.Hash())
	})
}

func TestPendingTurn(t *testing.T) {
	newPendingGame := func() (*Game, []EquationResult) {
		g := NewEmptyGame()
		g.Current = PlayerRed
		g.Board.Place(4, 3, &Piece{Owner: PlayerRed, Type: Quadratic, Value: 1})
		g.Board.Place(4, 5, &Piece{Owner: PlayerBlue, Type: Constant, Value: -1})
		g.Board.Place(0, 7, &Piece{Owner: PlayerBlue, Type: Quadratic, Value: 1})

		events, pending := g.MovePiece(Coord{4, 3}, Coord{4, 4})
		require.True(t, pending, "Move forming an equation should pend")
		require.Len(t, events, 1)
		return g, events
	}

	t.Run("holding the turn until removals are committed", func(t *testing.T) {
		g, events := newPendingGame()

		require.Equal(t, PlayerRed, g.Current, "Turn should not advance while pending")
		require.NotNil(t, g.Board.At(4, 5), "Removals should not apply before CompleteTurn")

		g.CompleteTurn(events)

		require.Nil(t, g.Board.At(4, 5), "Committed removals should clear the victim")
		require.Equal(t, PlayerBlue, g.Current, "Turn should advance on commit")
		require.False(t, g.Over)
	})

	t.Run("refusing new moves while pending", func(t *testing.T) {
		g, events := newPendingGame()

		_, pending := g.MovePiece(Coord{4, 4}, Coord{3, 4})

		require.False(t, pending, "Second move should be refused while one is pending")
		require.NotNil(t, g.Board.At(4, 4), "Board should be unchanged")

		g.CompleteTurn(events)
	})

	t.Run("ignoring CompleteTurn without a pending move", func(t *testing.T) {
		g := NewGame()
		before := g.Hash()

		g.CompleteTurn(nil)

		require.Equal(t, before, g.Hash(), "Stray CompleteTurn should be a no-op")
		require.Equal(t, StartingPlayer, g.Current)
	})
}

func TestWinAndDraw(t *testing.T) {
	t.Run("winning by removing the last enemy piece", func(t *testing.T) {
		g := NewEmptyGame()
		g.Current = PlayerRed
		g.Board.Place(4, 3, &Piece{Owner: PlayerRed, Type: Quadratic, Value: 1})
		g.Board.Place(4, 5, &Piece{Owner: PlayerBlue, Type: Constant, Value: -1})

		events, pending := g.MovePiece(Coord{4, 3}, Coord{4, 4})
		require.True(t, pending)
		g.CompleteTurn(events)

		require.True(t, g.Over)
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, PlayerRed, winner)
		require.Empty(t, g.LegalMoves(), "A finished game should offer no moves")
	})

	t.Run("losing the mover to a backfire on two axes", func(t *testing.T) {
		g := NewEmptyGame()
		g.Current = PlayerRed
		g.Board.Place(4, 3, &Piece{Owner: PlayerRed, Type: Quadratic, Value: 1})
		g.Board.Place(4, 5, &Piece{Owner: PlayerBlue, Type: Constant, Value: 1})
		g.Board.Place(5, 4, &Piece{Owner: PlayerBlue, Type: Constant, Value: 1})

		events, pending := g.MovePiece(Coord{4, 3}, Coord{4, 4})
		require.True(t, pending)
		require.Len(t, events, 2, "Both axes should backfire")
		for _, ev := range events {
			require.False(t, ev.RealRoots)
			require.Equal(t, PlayerRed, ev.Removals[0].Piece.Owner, "Backfire should target the mover")
		}

		g.CompleteTurn(events)

		require.Nil(t, g.Board.At(4, 4), "Mover should be gone; the duplicate removal is a no-op")
		require.Equal(t, 2, g.PieceCount(PlayerBlue), "Backfire should spare the opponent")
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, PlayerBlue, winner)
	})

	t.Run("drawing when both armies are gone", func(t *testing.T) {
		g := NewEmptyGame()

		g.switchTurn()

		require.True(t, g.Over)
		require.True(t, g.Drawn)
		_, ok := g.Winner()
		require.False(t, ok, "A drawn game should have no winner")
	})
}

func TestStalledPlayers(t *testing.T) {
	t.Run("passing the turn straight back over a stuck opponent", func(t *testing.T) {
		g := NewEmptyGame()
		g.Current = PlayerRed
		g.Board.Place(0, 0, &Piece{Owner: PlayerBlue, Type: Constant, Value: 1})
		g.Board.Place(4, 0, &Piece{Owner: PlayerRed, Type: Constant, Value: 1})

		g.MovePiece(Coord{4, 0}, Coord{5, 0})

		require.Equal(t, PlayerRed, g.Current, "Blue cannot move, so the turn should return to Red")
		require.False(t, g.Over)
	})

	t.Run("drawing when neither player can move", func(t *testing.T) {
		g := NewEmptyGame()
		g.Current = PlayerRed
		g.Board.Place(0, 3, &Piece{Owner: PlayerBlue, Type: Constant, Value: 1})
		g.Board.Place(7, 0, &Piece{Owner: PlayerRed, Type: Constant, Value: 1})

		g.MovePiece(Coord{7, 0}, Coord{8, 0})

		require.True(t, g.Over)
		require.True(t, g.Drawn)
	})
}

func TestToggleTurn(t *testing.T) {
	g := NewEmptyGame()
	g.Current = PlayerRed
	g.Board.Place(0, 0, &Piece{Owner: PlayerBlue, Type: Constant, Value: 1})
	g.Board.Place(4, 4, &Piece{Owner: PlayerRed, Type: Quadratic, Value: 1})

	g.ToggleTurn()

	require.Equal(t, PlayerBlue, g.Current, "Toggle should flip the player even when they are stuck")
	require.False(t, g.Over, "Toggle should not settle the game")

	g.ToggleTurn()

	require.Equal(t, PlayerRed, g.Current)
}

func TestCloneIndependence(t *testing.T) {
	g := NewGame()
	before := g.Hash()

	clone := g.Clone()
	clone.MovePiece(Coord{6, 3}, Coord{5, 3})

	require.Equal(t, before, g.Hash(), "Playing on a clone should not touch the original")
	require.NotEqual(t, before, clone.Hash())
	require.Equal(t, StartingPlayer, g.Current)
}

func TestHashDistinguishesTurn(t *testing.T) {
	g := NewEmptyGame()
	g.Board.Place(4, 4, &Piece{Owner: PlayerRed, Type: Quadratic, Value: 1})
	before := g.Hash()

	g.ToggleTurn()

	require.NotEqual(t, before, g.Hash(), "The player to move should be part of the hash")
}

func TestSnapshot(t *testing.T) {
	g := NewGame()

	cells := g.Snapshot()

	require.Len(t, cells, 48, "Snapshot should list every occupied cell")
	first := cells[0]
	require.Equal(t, 0, first.Row)
	require.Equal(t, 0, first.Col)
	require.Equal(t, PlayerRed, first.Player)
	require.Equal(t, Quadratic, first.Type)
	require.Equal(t, 2, first.Value)
	require.Equal(t, "2x²", first.Label)
}
