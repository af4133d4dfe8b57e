package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// MineField holds the real mine points, row-major.
type MineField []bool

func (f MineField) Count() (n int) {
	for _, mine := range f {
		if mine {
			n++
		}
	}
	return
}

// PlaceMines draws cells uniformly at random and keeps the ones that are not
// mined yet until MineCount distinct cells hold a mine.
func PlaceMines(p GameParams, r *rand.Rand) (MineField, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rows, cols, mineCount := p.Unpack()
	field := make(MineField, rows*cols)

	draws := 0
	for placed := 0; placed < mineCount; {
		draws++
		row, col := r.IntN(rows), r.IntN(cols)
		i := row*cols + col
		if field[i] {
			continue
		}
		field[i] = true
		placed++
	}

	Log.WithFields(logrus.Fields{
		"params": p.String(),
		"draws":  draws,
	}).Debug("placed mines")

	return field, nil
}
