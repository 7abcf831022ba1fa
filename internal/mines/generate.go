package mines

import "github.com/sirupsen/logrus"

// Rejection sampling gives up after this many draws per cell and picks the
// remaining mines from the list of free cells instead.
const placementAttemptsPerCell = 4

// placeMines puts MineCount mines on the field, never on (sx, sy).
func (f *Minefield) placeMines(sx, sy int) {
	var (
		start  = sy*f.Size + sx
		total  = len(f.Cells)
		placed = 0
		draws  = 0
	)

	for ; placed < f.MineCount && draws < placementAttemptsPerCell*total; draws++ {
		i := f.rnd.IntN(total)
		if i == start || f.Cells[i].Mine {
			continue
		}
		f.Cells[i].Mine = true
		placed++
	}

	if placed < f.MineCount {
		candidates := make([]int, 0, total-placed)
		for i := range f.Cells {
			if i != start && !f.Cells[i].Mine {
				candidates = append(candidates, i)
			}
		}
		k := len(candidates)
		for ; placed < f.MineCount; placed++ {
			i := f.rnd.IntN(k)
			f.Cells[candidates[i]].Mine = true
			k--
			candidates[i] = candidates[k]
		}
	}

	Log.WithFields(logrus.Fields{
		"size": f.Size, "mines": f.MineCount, "start": Point{sx, sy}, "draws": draws,
	}).Debug("placed mines")
}

func (f *Minefield) calculateHints() {
	for y := range f.Size {
		for x := range f.Size {
			c := f.cell(x, y)
			if c.Mine {
				continue
			}
			c.Adjacent = 0
			for _, d := range directions {
				xx, yy := x+d.X, y+d.Y
				if f.InBounds(xx, yy) && f.cell(xx, yy).Mine {
					c.Adjacent++
				}
			}
		}
	}
}
