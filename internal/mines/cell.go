package mines

// Cell is a single square of the field.
type Cell struct {
	Mine     bool
	Marked   bool
	Revealed bool
	Adjacent int // mines among the eight neighbours, set once mines are placed
}

type Point struct {
	X, Y int
}

var directions = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
