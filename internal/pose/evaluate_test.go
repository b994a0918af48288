package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
)

func TestAngleError_Wraparound(t *testing.T) {
	assert.Equal(t, 10.0, AngleError(350, 0))
	assert.Equal(t, 10.0, AngleError(10, 0))
	assert.Equal(t, AngleError(350, 0), AngleError(10, 0))
	assert.Equal(t, 180.0, AngleError(180, 0))
	assert.InDelta(t, 20.0, AngleError(-10, 370), 1e-9)
}

func TestJointScore(t *testing.T) {
	t.Run("linear inside tolerance", func(t *testing.T) {
		assert.Equal(t, 100.0, JointScore(90, 90, 45))
		assert.InDelta(t, 77.777, JointScore(100, 90, 45), 1e-3)
		assert.Equal(t, 0.0, JointScore(135, 90, 45))
	})

	t.Run("zero beyond tolerance", func(t *testing.T) {
		assert.Equal(t, 0.0, JointScore(136, 90, 45))
		assert.Equal(t, 0.0, JointScore(270, 90, 45))
	})

	t.Run("monotonically non-increasing in error", func(t *testing.T) {
		for _, tol := range []float64{5, 20, 45, 90} {
			prev := JointScore(180, 180, tol)
			for d := 0.5; d <= 180; d += 0.5 {
				cur := JointScore(180+d, 180, tol)
				require.LessOrEqual(t, cur, prev, "tol=%v error=%v", tol, d)
				prev = cur
			}
		}
	})

	t.Run("zero tolerance only accepts exact match", func(t *testing.T) {
		assert.Equal(t, 100.0, JointScore(10, 10, 0))
		assert.Equal(t, 0.0, JointScore(11, 10, 0))
	})
}

func TestCheckFlamingo(t *testing.T) {
	c := DefaultCatalog()
	left := indexOf(t, c, "Flamingo Left")
	right := indexOf(t, c, "Flamingo Right")

	t.Run("lifted leg is exclusive", func(t *testing.T) {
		fs := features.Set{features.LeftAnkleY: 0.5, features.RightAnkleY: 0.9}
		assert.Equal(t, 100.0, c.Score(fs, left))
		assert.Equal(t, 0.0, c.Score(fs, right))
	})

	t.Run("lift must exceed the margin", func(t *testing.T) {
		fs := features.Set{features.LeftAnkleY: 0.87, features.RightAnkleY: 0.9}
		assert.Equal(t, 0.0, c.Score(fs, left))
	})

	t.Run("excessive lean fails", func(t *testing.T) {
		fs := features.Set{features.LeftAnkleY: 0.5, features.RightAnkleY: 0.9, features.TorsoLean: 35}
		assert.Equal(t, 0.0, c.Score(fs, left))
		assert.Equal(t, "✓ Your left leg is lifted\n✗ Keep your torso upright", c.Feedback(fs, left))
	})

	t.Run("lean within tolerance passes", func(t *testing.T) {
		fs := features.Set{features.LeftAnkleY: 0.5, features.RightAnkleY: 0.9, features.TorsoLean: 12}
		assert.Equal(t, 100.0, c.Score(fs, left))
	})
}

func TestCheckStar(t *testing.T) {
	c := DefaultCatalog()
	star := indexOf(t, c, "Star Pose")

	t.Run("feet together scores 0 regardless of arms", func(t *testing.T) {
		fs := features.Set{
			features.LeftShoulder:  90,
			features.RightShoulder: 90,
			features.LeftAnkleX:    0.50,
			features.RightAnkleX:   0.52,
		}
		assert.Equal(t, 0.0, c.Score(fs, star))
		assert.Contains(t, c.Feedback(fs, star), "✗ Keep your feet apart")
	})

	t.Run("spread gate averaged with shoulder mean", func(t *testing.T) {
		fs := features.Set{
			features.LeftShoulder:  100,
			features.RightShoulder: 80,
			features.LeftAnkleX:    0.2,
			features.RightAnkleX:   0.5,
		}
		shoulders := 100 * (1 - 10.0/45)
		assert.InDelta(t, (100+shoulders)/2, c.Score(fs, star), 1e-9)
		assert.Equal(t,
			"✓ Good left arm position\n✓ Good right arm position\n✓ Good legs position",
			c.Feedback(fs, star))
	})
}

func TestCheckTandem(t *testing.T) {
	c := DefaultCatalog()
	tandem := indexOf(t, c, "Tandem Stance")

	fs := features.Set{
		features.LeftLeg:     180,
		features.RightLeg:    180,
		features.TorsoLean:   0,
		features.LeftAnkleX:  0.50,
		features.RightAnkleX: 0.52,
	}
	assert.Equal(t, 100.0, c.Score(fs, tandem))

	fs[features.RightAnkleX] = 0.70
	assert.InDelta(t, 200.0/3, c.Score(fs, tandem), 1e-9)
	assert.Contains(t, c.Feedback(fs, tandem), "✗ Bring your feet into line")
}

func TestCheckHeelRaise(t *testing.T) {
	c := DefaultCatalog()
	heel := indexOf(t, c, "Heel Raise")

	fs := features.Set{
		features.LeftLeg:    180,
		features.RightLeg:   180,
		features.TorsoLean:  0,
		features.LeftHeelY:  0.85,
		features.RightHeelY: 0.85,
		features.LeftToeY:   0.90,
		features.RightToeY:  0.90,
	}
	assert.Equal(t, 100.0, c.Score(fs, heel))

	// only one heel lifted
	fs[features.RightHeelY] = 0.89
	assert.InDelta(t, 200.0/3, c.Score(fs, heel), 1e-9)
	assert.Contains(t, c.Feedback(fs, heel), "✗ Lift your heels higher")
}

func TestCheckStanding(t *testing.T) {
	c := DefaultCatalog()
	standing := indexOf(t, c, "Normal Standing Stance")

	fs := features.Set{features.TorsoLean: 0, features.LeftAnkleX: 0.45, features.RightAnkleX: 0.55}
	assert.Equal(t, 50.0, c.Score(fs, standing))
	assert.Equal(t, "✓ Your posture is good\n✗ Keep your feet together", c.Feedback(fs, standing))
}

func TestEvaluation_Passed(t *testing.T) {
	assert.False(t, Evaluation{}.Passed())
	assert.True(t, Evaluation{Criteria: []Criterion{{Passed: true}}}.Passed())
	assert.False(t, Evaluation{Criteria: []Criterion{{Passed: true}, {}}}.Passed())
}
