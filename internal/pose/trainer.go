package pose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
)

// Trainer turns recorded feature samples of a demonstrated pose into a
// generic template.
type Trainer struct{}

// NewTrainer creates a new Trainer instance.
func NewTrainer() *Trainer {
	return &Trainer{}
}

// TrainGeneric averages the angle features present in every sample into
// the targets of a generic template. Angles are averaged on the circle so
// that samples either side of 0/360 do not cancel out.
func (t *Trainer) TrainGeneric(name, description string, samples []features.Set, tolerance float64) (Template, error) {
	if len(samples) == 0 {
		return Template{}, fmt.Errorf("no samples provided")
	}
	if tolerance <= 0 {
		return Template{}, fmt.Errorf("tolerance must be positive, got %v", tolerance)
	}

	tmpl := Template{
		Name:        name,
		Description: description,
		Tolerances:  Tolerances{Default: tolerance},
	}

	// Step 1: keep only angles measured in every sample
	for _, f := range features.All {
		if !f.IsAngle() {
			continue
		}

		radians := make([]float64, 0, len(samples))
		for _, s := range samples {
			v, ok := s.Lookup(f)
			if !ok {
				break
			}
			radians = append(radians, v*math.Pi/180)
		}
		if len(radians) != len(samples) {
			continue
		}

		// Step 2: circular mean, mapped back into [0, 360)
		mean := stat.CircularMean(radians, nil) * 180 / math.Pi
		if mean < 0 {
			mean += 360
		}
		tmpl.Angles = append(tmpl.Angles, AngleTarget{Feature: f, Target: mean})
	}

	if len(tmpl.Angles) == 0 {
		return Template{}, fmt.Errorf("no angle was measured in every sample")
	}

	return tmpl, nil
}
