package pose

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
)

// Geometric margins used by the special checks, in normalized image units.
const (
	// FlamingoLiftMargin is how far the lifted ankle must be above the
	// standing ankle.
	FlamingoLiftMargin = 0.05
	// StarSpreadThreshold is the minimum horizontal ankle separation.
	StarSpreadThreshold = 0.1
	// TandemAlignThreshold is the maximum horizontal ankle separation for
	// the feet to count as in line.
	TandemAlignThreshold = 0.05
	// HeelLiftMargin is how far each heel must be above its toes.
	HeelLiftMargin = 0.02
	// StandingSpreadThreshold is the maximum horizontal ankle separation
	// for the feet to count as together.
	StandingSpreadThreshold = 0.1
)

// Targets the checks fall back to when a template does not list its own.
const (
	uprightTarget  = 0
	straightLeg    = 180
	armOutShoulder = 90
)

type checkFunc func(t Template, fs features.Set) Evaluation

var checks = map[Check]checkFunc{
	CheckStanding:      checkStanding,
	CheckStar:          checkStar,
	CheckTandem:        checkTandem,
	CheckHeelRaise:     checkHeelRaise,
	CheckFlamingoLeft:  checkFlamingo(features.LeftAnkleY, features.RightAnkleY, "left"),
	CheckFlamingoRight: checkFlamingo(features.RightAnkleY, features.LeftAnkleY, "right"),
}

// angleCriterion scores one angle against the template's target. An
// unmeasured angle fails and contributes 0.
func angleCriterion(t Template, fs features.Set, feature features.Feature, fallback float64, pass, fail string) Criterion {
	c := Criterion{Feature: feature, Message: fail}
	actual, ok := fs.Lookup(feature)
	if !ok {
		return c
	}

	target := t.Target(feature, fallback)
	tolerance := t.Tolerances.For(feature)
	if AngleError(actual, target) <= tolerance {
		c.Passed = true
		c.Message = pass
	}
	c.Score = JointScore(actual, target, tolerance)
	return c
}

// gate is a binary criterion worth 100 when passed.
func gate(passed bool, pass, fail string) Criterion {
	if passed {
		return Criterion{Passed: true, Score: 100, Message: pass}
	}
	return Criterion{Message: fail}
}

// ankleSpread returns the horizontal ankle separation and whether both
// ankles were measured.
func ankleSpread(fs features.Set) (float64, bool) {
	if !fs.Has(features.LeftAnkleX, features.RightAnkleX) {
		return 0, false
	}
	return math.Abs(fs.Value(features.LeftAnkleX) - fs.Value(features.RightAnkleX)), true
}

func posture(t Template, fs features.Set) Criterion {
	return angleCriterion(t, fs, features.TorsoLean, uprightTarget,
		"Your posture is good", "Stand more upright")
}

func straightLegs(t Template, fs features.Set) (Criterion, Criterion) {
	left := angleCriterion(t, fs, features.LeftLeg, straightLeg,
		"Your left leg is straight", "Straighten your left leg")
	right := angleCriterion(t, fs, features.RightLeg, straightLeg,
		"Your right leg is straight", "Straighten your right leg")
	return left, right
}

func meanScore(cs ...Criterion) float64 {
	scores := make([]float64, len(cs))
	for i, c := range cs {
		scores[i] = c.Score
	}
	return stat.Mean(scores, nil)
}

func checkStanding(t Template, fs features.Set) Evaluation {
	spread, ok := ankleSpread(fs)
	torso := posture(t, fs)
	feet := gate(ok && spread < StandingSpreadThreshold,
		"Your feet are together", "Keep your feet together")

	return Evaluation{
		Score:    meanScore(torso, feet),
		Criteria: []Criterion{torso, feet},
	}
}

// checkStar zeroes the score unless the feet are spread; otherwise the
// spread gate and the mean shoulder score are averaged.
func checkStar(t Template, fs features.Set) Evaluation {
	spread, ok := ankleSpread(fs)
	left := angleCriterion(t, fs, features.LeftShoulder, armOutShoulder,
		"Good left arm position", "Spread your left arm more")
	right := angleCriterion(t, fs, features.RightShoulder, armOutShoulder,
		"Good right arm position", "Spread your right arm more")
	legs := gate(ok && spread >= StarSpreadThreshold,
		"Good legs position", "Keep your feet apart")

	e := Evaluation{Criteria: []Criterion{left, right, legs}}
	if legs.Passed {
		e.Score = (legs.Score + meanScore(left, right)) / 2
	}
	return e
}

func checkTandem(t Template, fs features.Set) Evaluation {
	spread, ok := ankleSpread(fs)
	left, right := straightLegs(t, fs)
	torso := posture(t, fs)
	aligned := gate(ok && spread < TandemAlignThreshold,
		"Your feet are aligned", "Bring your feet into line")

	return Evaluation{
		Score:    (meanScore(left, right) + torso.Score + aligned.Score) / 3,
		Criteria: []Criterion{left, right, torso, aligned},
	}
}

func checkHeelRaise(t Template, fs features.Set) Evaluation {
	left, right := straightLegs(t, fs)
	torso := posture(t, fs)

	lifted := fs.Has(features.LeftHeelY, features.LeftToeY, features.RightHeelY, features.RightToeY) &&
		fs.Value(features.LeftHeelY) < fs.Value(features.LeftToeY)-HeelLiftMargin &&
		fs.Value(features.RightHeelY) < fs.Value(features.RightToeY)-HeelLiftMargin
	heels := gate(lifted, "Your heels are lifted", "Lift your heels higher")

	return Evaluation{
		Score:    (meanScore(left, right) + torso.Score + heels.Score) / 3,
		Criteria: []Criterion{left, right, torso, heels},
	}
}

// checkFlamingo is all or nothing: the lifted ankle must clear the
// standing ankle by FlamingoLiftMargin and, when the torso lean was
// measured, it must be within the template's tolerance.
func checkFlamingo(lifted, standing features.Feature, side string) checkFunc {
	return func(t Template, fs features.Set) Evaluation {
		up := fs.Has(lifted, standing) &&
			fs.Value(lifted) < fs.Value(standing)-FlamingoLiftMargin
		leg := gate(up, "Your "+side+" leg is lifted", "Lift your "+side+" leg higher")

		e := Evaluation{Criteria: []Criterion{leg}}
		balanced := true
		if _, ok := fs.Lookup(features.TorsoLean); ok {
			torso := angleCriterion(t, fs, features.TorsoLean, uprightTarget,
				"Your balance is good", "Keep your torso upright")
			balanced = torso.Passed
			e.Criteria = append(e.Criteria, torso)
		}

		if leg.Passed && balanced {
			e.Score = 100
		}
		return e
	}
}
