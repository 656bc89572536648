package game

import "fmt"

// Coord addresses a board cell by row and column.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move relocates the piece on From to the empty cell To.
type Move struct {
	From, To Coord
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}
