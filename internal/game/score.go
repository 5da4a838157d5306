package game

import (
	"fmt"
	"strconv"

	"github.com/akarpov/notflappy/internal/entity"
	"github.com/akarpov/notflappy/internal/sprite"
)

// ScoreDigits is the fixed width of the on-screen score counter.
const ScoreDigits = 5

// ScoreCounter renders the score as a row of digit entities, least
// significant digit at the anchor and higher digits growing leftward.
// Each digit entity carries the ten glyph views; the current view index
// is the digit value. Leading zeros are hidden, so a score of zero shows
// nothing at all.
type ScoreCounter struct {
	digits [ScoreDigits]entity.Entity
}

// newScoreCounter loads the digit glyph views and lays the digit
// entities out right-to-left from (x, y).
func newScoreCounter(x, y int) (ScoreCounter, error) {
	var sc ScoreCounter

	glyphs := make([]sprite.View, 10)
	for d := 0; d < 10; d++ {
		v, err := sprite.Builtin(strconv.Itoa(d))
		if err != nil {
			return ScoreCounter{}, fmt.Errorf("game: loading digit glyphs: %w", err)
		}
		glyphs[d] = v
	}

	for i := range sc.digits {
		e := entity.New(entity.TypeScoreDigit)
		for d := 0; d < 10; d++ {
			if err := e.AddView(glyphs[d]); err != nil {
				return ScoreCounter{}, err
			}
		}
		e.X = x - i*(glyphs[0].Width+1)
		e.Y = y
		sc.digits[i] = e
	}

	sc.Update(0)
	return sc, nil
}

// Update decomposes score into decimal digits least-significant-first
// and selects the matching glyph on each digit entity. Slots beyond the
// number's length are hidden; a score wider than the counter shows only
// its low digits.
func (sc *ScoreCounter) Update(score int) {
	if score < 0 {
		score = 0
	}

	i := 0
	for score > 0 && i < ScoreDigits {
		// Glyph views are loaded in 0..9 order, so the digit value is
		// the view index.
		if err := sc.digits[i].SetCurrentView(score % 10); err != nil {
			return
		}
		sc.digits[i].Visible = true
		score /= 10
		i++
	}
	for ; i < ScoreDigits; i++ {
		sc.digits[i].Visible = false
	}
}

// Digit returns the i-th digit entity (0 = least significant), for
// registration and tests.
func (sc *ScoreCounter) Digit(i int) *entity.Entity {
	return &sc.digits[i]
}
