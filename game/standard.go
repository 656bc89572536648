package game

// Standard starting layout. Each player opens with three full rows of
// eight: quadratics on the back rank, linears in front of them, constants
// leading. Every value set sums to zero so neither army begins with a
// material edge.
var (
	quadraticValues = [Cols]int{2, -1, 1, -2, 3, -1, 1, -3}
	linearValues    = [Cols]int{3, -2, 0, 1, -1, 2, 0, -3}
	constantValues  = [Cols]int{-4, 2, -1, 3, -3, 1, -2, 4}
)

// homeRows lists a player's three starting rows, back rank first. Red sits
// on the low rows, Blue on the high rows.
func homeRows(p Player) [3]int {
	if p == PlayerRed {
		return [3]int{0, 1, 2}
	}
	return [3]int{Rows - 1, Rows - 2, Rows - 3}
}

func setupStandard(b *Board) {
	for _, player := range []Player{PlayerRed, PlayerBlue} {
		rows := homeRows(player)
		fillRow(b, player, Quadratic, rows[0], quadraticValues)
		fillRow(b, player, Linear, rows[1], linearValues)
		fillRow(b, player, Constant, rows[2], constantValues)
	}
}

// fillRow lays one value set across a row. Blue takes each set reversed, so
// the two armies mirror each other through the board center.
func fillRow(b *Board, player Player, t PieceType, row int, values [Cols]int) {
	for c := 0; c < Cols; c++ {
		v := values[c]
		if player == PlayerBlue {
			v = values[Cols-1-c]
		}
		b.Place(row, c, &Piece{Owner: player, Type: t, Value: v})
	}
}
