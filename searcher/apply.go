package searcher

import "quadra/game"

// capture is one piece lifted off the board, with the cell to put it back
// on.
type capture struct {
	piece *game.Piece
	at    game.Coord
}

// undoRecord holds exactly what applyMove changed: the relocation and
// every removed piece in removal order.
type undoRecord struct {
	move     game.Move
	captured []capture
}

// applyMove plays move destructively: relocate, resolve the equations on
// the destination, and remove every victim on the spot. The search never
// leaves a move pending.
func applyMove(g *game.Game, move game.Move) undoRecord {
	g.Board.Relocate(move.From, move.To)

	u := undoRecord{move: move}
	for _, ev := range g.ResolveEquations(move.To) {
		for _, pp := range ev.Removals {
			// Overlapping chains may remove the same cell twice; only the
			// first removal yields a piece to record.
			if p := g.Board.RemoveAt(pp.At.Row, pp.At.Col); p != nil {
				u.captured = append(u.captured, capture{piece: p, at: pp.At})
			}
		}
	}
	return u
}

// revert undoes applyMove on the same game: captured pieces go back on
// their cells first, then the mover walks back to its origin. The order
// matters when a backfire removed the mover itself.
func (u undoRecord) revert(g *game.Game) {
	for _, restored := range u.captured {
		g.Board.Place(restored.at.Row, restored.at.Col, restored.piece)
	}
	g.Board.Relocate(u.move.To, u.move.From)
}
