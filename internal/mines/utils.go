package mines

// reveal opens (x, y) and flood fills through cells without adjacent mines.
// Cells are opened when pushed, so each one enters the stack at most once.
func (f *Minefield) reveal(x, y int) {
	if !f.openable(x, y) {
		return
	}
	f.open(x, y)
	todo := []Point{{x, y}}

	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		if f.cell(p.X, p.Y).Adjacent != 0 {
			continue
		}
		for _, d := range directions {
			xx, yy := p.X+d.X, p.Y+d.Y
			if f.openable(xx, yy) {
				f.open(xx, yy)
				todo = append(todo, Point{xx, yy})
			}
		}
	}
}

func (f *Minefield) openable(x, y int) bool {
	if !f.InBounds(x, y) {
		return false
	}
	c := f.cell(x, y)
	return !c.Mine && !c.Revealed
}

func (f *Minefield) open(x, y int) {
	c := f.cell(x, y)
	c.Revealed = true
	c.Marked = false
}
