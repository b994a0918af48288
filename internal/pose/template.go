// Package pose holds the pose template catalog and scores feature sets
// against it.
package pose

import "github.com/xibuifgo/Group4-Game-Therapy/internal/features"

// Check selects a bespoke scoring predicate for a template.
// The zero value means the template is scored from its angle targets.
type Check string

const (
	// CheckGeneric scores a template from its angle targets alone.
	CheckGeneric Check = ""
	// CheckStanding requires an upright torso and feet close together.
	CheckStanding Check = "standing"
	// CheckStar requires widely spread feet and arms raised to the side.
	CheckStar Check = "star_pose"
	// CheckTandem requires straight legs with one foot in front of the other.
	CheckTandem Check = "tandem_stance"
	// CheckHeelRaise requires straight legs with both heels off the floor.
	CheckHeelRaise Check = "heel_raise"
	// CheckFlamingoLeft requires the left foot lifted above the right.
	CheckFlamingoLeft Check = "flamingo_left"
	// CheckFlamingoRight requires the right foot lifted above the left.
	CheckFlamingoRight Check = "flamingo_right"
)

// AngleTarget is the target value for one angle feature.
type AngleTarget struct {
	Feature features.Feature `json:"feature" validate:"required"`
	Target  float64          `json:"target" validate:"gte=0,lte=360"`
}

// Tolerances holds per-feature angle tolerances in degrees, with a default
// for features that have none of their own.
type Tolerances struct {
	Default    float64                      `json:"default" validate:"gt=0"`
	PerFeature map[features.Feature]float64 `json:"per_feature,omitempty" validate:"dive,gt=0"`
}

// For returns the tolerance for a feature.
func (t Tolerances) For(f features.Feature) float64 {
	if v, ok := t.PerFeature[f]; ok {
		return v
	}
	return t.Default
}

// Template is an immutable target pose definition plus its display metadata.
// When Check is set it takes precedence over Angles for scoring; the
// check still reads its targets and tolerances from Angles and Tolerances.
type Template struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Image       string        `json:"image,omitempty"`
	Angles      []AngleTarget `json:"angles" validate:"dive"`
	Tolerances  Tolerances    `json:"tolerances"`
	Check       Check         `json:"special_check,omitempty"`
}

// IsSpecial reports whether the template is scored by a bespoke predicate.
func (t Template) IsSpecial() bool {
	return t.Check != CheckGeneric
}

// Target returns the template's target for a feature, or fallback if the
// template does not list one.
func (t Template) Target(f features.Feature, fallback float64) float64 {
	for _, a := range t.Angles {
		if a.Feature == f {
			return a.Target
		}
	}
	return fallback
}

// clone returns a deep copy so catalog readers cannot mutate shared state.
func (t Template) clone() Template {
	out := t
	out.Angles = append([]AngleTarget(nil), t.Angles...)
	if t.Tolerances.PerFeature != nil {
		out.Tolerances.PerFeature = make(map[features.Feature]float64, len(t.Tolerances.PerFeature))
		for k, v := range t.Tolerances.PerFeature {
			out.Tolerances.PerFeature[k] = v
		}
	}
	return out
}
