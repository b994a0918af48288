package pose

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
)

// Feedback line markers.
const (
	PassMarker = "✓"
	FailMarker = "✗"
)

// Criterion is one checked aspect of a pose.
type Criterion struct {
	// Feature is set for criteria that compare a single angle to a target.
	Feature features.Feature
	Passed  bool
	// Score is the criterion's contribution in [0, 100].
	Score float64
	// Message is the feedback text without its marker.
	Message string
}

// Line returns the feedback line for the criterion.
func (c Criterion) Line() string {
	if c.Passed {
		return PassMarker + " " + c.Message
	}
	return FailMarker + " " + c.Message
}

// Evaluation is the result of scoring one feature set against one template.
type Evaluation struct {
	Score    float64
	Criteria []Criterion
}

// Lines returns one feedback line per criterion.
func (e Evaluation) Lines() []string {
	lines := make([]string, len(e.Criteria))
	for i, c := range e.Criteria {
		lines[i] = c.Line()
	}
	return lines
}

// Passed reports whether every criterion passed.
func (e Evaluation) Passed() bool {
	for _, c := range e.Criteria {
		if !c.Passed {
			return false
		}
	}
	return len(e.Criteria) > 0
}

// AngleError returns the shortest angular distance between actual and
// target, in degrees, accounting for wraparound.
func AngleError(actual, target float64) float64 {
	d := math.Mod(math.Abs(actual-target), 360)
	return math.Min(d, 360-d)
}

// JointScore scores one angle against its target. It falls linearly from
// 100 at the target to 0 at the tolerance and stays 0 beyond it.
func JointScore(actual, target, tolerance float64) float64 {
	e := AngleError(actual, target)
	if tolerance <= 0 {
		if e == 0 {
			return 100
		}
		return 0
	}
	if e > tolerance {
		return 0
	}
	return 100 * (1 - e/tolerance)
}

// adjustDirection says whether actual must grow or shrink to reach target
// along the shorter way round.
func adjustDirection(actual, target float64) string {
	d := math.Mod(target-actual+540, 360) - 180
	if d > 0 {
		return "more"
	}
	return "less"
}

func evaluate(t Template, fs features.Set) Evaluation {
	if !t.IsSpecial() {
		return evaluateGeneric(t, fs)
	}
	check, ok := checks[t.Check]
	if !ok {
		return Evaluation{}
	}
	e := check(t, fs)
	e.Score = clampScore(e.Score)
	return e
}

// evaluateGeneric scores every template angle that was measured and
// averages the joint scores.
func evaluateGeneric(t Template, fs features.Set) Evaluation {
	var e Evaluation
	var scores []float64

	for _, a := range t.Angles {
		actual, ok := fs.Lookup(a.Feature)
		if !ok {
			continue
		}
		tolerance := t.Tolerances.For(a.Feature)
		score := JointScore(actual, a.Target, tolerance)
		passed := AngleError(actual, a.Target) <= tolerance

		msg := a.Feature.Title()
		if !passed {
			msg += " - adjust " + adjustDirection(actual, a.Target)
		}

		scores = append(scores, score)
		e.Criteria = append(e.Criteria, Criterion{
			Feature: a.Feature,
			Passed:  passed,
			Score:   score,
			Message: msg,
		})
	}

	if len(scores) > 0 {
		e.Score = clampScore(stat.Mean(scores, nil))
	}
	return e
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
