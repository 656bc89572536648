package game

// Board dimensions are fixed: 9 rows of 8 columns.
const (
	Rows = 9
	Cols = 8
)

// Board is the Rows x Cols grid. Cells hold a piece or nil.
type Board struct {
	cells []*Piece
}

func NewBoard() *Board {
	return &Board{cells: make([]*Piece, Rows*Cols)}
}

// At returns the piece on (r,c), nil for empty or out-of-bounds cells.
func (b *Board) At(r, c int) *Piece {
	if !b.InBounds(r, c) {
		return nil
	}
	return b.cells[index(r, c)]
}

func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < Rows && c < Cols
}

// IsEmpty reports whether (r,c) is a vacant cell on the board.
// Out-of-bounds cells are not empty: they are never destinations.
func (b *Board) IsEmpty(r, c int) bool {
	return b.InBounds(r, c) && b.cells[index(r, c)] == nil
}

// Place puts a piece on (r,c). Out-of-bounds placements are dropped.
func (b *Board) Place(r, c int, p *Piece) {
	if !b.InBounds(r, c) {
		return
	}
	b.cells[index(r, c)] = p
}

// RemoveAt clears (r,c) and returns the removed piece, nil if the cell was
// already empty or out of bounds.
func (b *Board) RemoveAt(r, c int) *Piece {
	if !b.InBounds(r, c) {
		return nil
	}
	p := b.cells[index(r, c)]
	b.cells[index(r, c)] = nil
	return p
}

// Relocate moves whatever sits on from onto to. The destination must be an
// empty cell; otherwise the call is a no-op.
func (b *Board) Relocate(from, to Coord) {
	p := b.At(from.Row, from.Col)
	if p == nil || !b.IsEmpty(to.Row, to.Col) {
		return
	}
	b.cells[index(from.Row, from.Col)] = nil
	b.cells[index(to.Row, to.Col)] = p
}

// CountFor tallies the pieces a player has left on the board.
func (b *Board) CountFor(p Player) int {
	count := 0
	for _, piece := range b.cells {
		if piece != nil && piece.Owner == p {
			count++
		}
	}
	return count
}

// Clone copies the grid. Pieces are immutable, so the clone shares them.
func (b *Board) Clone() *Board {
	clone := NewBoard()
	copy(clone.cells, b.cells)
	return clone
}

func index(r, c int) int {
	return r*Cols + c
}
