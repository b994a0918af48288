package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	t.Run("averages readings", func(t *testing.T) {
		w := NewWindow(5)
		w.Push(Set{LeftArm: 170})
		w.Push(Set{LeftArm: 180})
		w.Push(Set{LeftArm: 190, TorsoLean: 4})

		got := w.Smoothed()
		assert.InDelta(t, 180, got.Value(LeftArm), 1e-9)
		assert.InDelta(t, 4, got.Value(TorsoLean), 1e-9)
	})

	t.Run("evicts oldest when full", func(t *testing.T) {
		w := NewWindow(3)
		for _, v := range []float64{0, 10, 20, 30} {
			w.Push(Set{TorsoLean: v})
		}

		assert.Equal(t, 3, w.Len())
		assert.InDelta(t, 20, w.Smoothed().Value(TorsoLean), 1e-9)
	})

	t.Run("pushed sets are copied", func(t *testing.T) {
		w := NewWindow(2)
		fs := Set{LeftLeg: 180}
		w.Push(fs)
		fs[LeftLeg] = 0

		assert.InDelta(t, 180, w.Smoothed().Value(LeftLeg), 1e-9)
	})

	t.Run("invalid size falls back to default", func(t *testing.T) {
		assert.Equal(t, DefaultWindowSize, NewWindow(0).Size())
	})

	t.Run("reset empties the window", func(t *testing.T) {
		w := NewWindow(2)
		w.Push(Set{LeftLeg: 180})
		w.Push(nil)
		assert.Equal(t, 1, w.Len())

		w.Reset()
		assert.Equal(t, 0, w.Len())
		assert.Empty(t, w.Smoothed())
	})
}
