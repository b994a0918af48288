// Package features derives scoring features (joint angles and foot
// positions) from body landmarks.
package features

import "strings"

// Feature names a scalar derived from a landmark set.
type Feature string

// Joint angles, in degrees.
const (
	LeftArm       Feature = "left_arm"
	RightArm      Feature = "right_arm"
	LeftShoulder  Feature = "left_shoulder"
	RightShoulder Feature = "right_shoulder"
	LeftElbow     Feature = "left_elbow"
	RightElbow    Feature = "right_elbow"
	LeftLeg       Feature = "left_leg"
	RightLeg      Feature = "right_leg"
	TorsoLean     Feature = "torso_lean"
	HipAngle      Feature = "hip_angle"
)

// Normalized coordinate components, unitless on the 0-1 image scale.
const (
	LeftAnkleX  Feature = "left_ankle_x"
	LeftAnkleY  Feature = "left_ankle_y"
	RightAnkleX Feature = "right_ankle_x"
	RightAnkleY Feature = "right_ankle_y"
	LeftHeelY   Feature = "left_heel_y"
	RightHeelY  Feature = "right_heel_y"
	LeftToeY    Feature = "left_toe_y"
	RightToeY   Feature = "right_toe_y"
)

// All lists every feature the extractor can produce.
var All = []Feature{
	LeftArm, RightArm, LeftShoulder, RightShoulder, LeftElbow, RightElbow,
	LeftLeg, RightLeg, TorsoLean, HipAngle,
	LeftAnkleX, LeftAnkleY, RightAnkleX, RightAnkleY,
	LeftHeelY, RightHeelY, LeftToeY, RightToeY,
}

// IsAngle reports whether the feature is measured in degrees.
func (f Feature) IsAngle() bool {
	switch f {
	case LeftArm, RightArm, LeftShoulder, RightShoulder, LeftElbow, RightElbow,
		LeftLeg, RightLeg, TorsoLean, HipAngle:
		return true
	}
	return false
}

// Known reports whether the feature is one the extractor produces.
func (f Feature) Known() bool {
	for _, k := range All {
		if k == f {
			return true
		}
	}
	return false
}

// Title returns a display label, e.g. "Left Arm".
func (f Feature) Title() string {
	words := strings.Split(string(f), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Set is the per-frame mapping from feature to value. Features whose
// landmarks were not detected are absent.
type Set map[Feature]float64

// Lookup returns a feature value and whether it was measured.
func (s Set) Lookup(f Feature) (float64, bool) {
	v, ok := s[f]
	return v, ok
}

// Value returns a feature value, or 0 if it was not measured.
func (s Set) Value(f Feature) float64 {
	return s[f]
}

// Has reports whether every listed feature was measured.
func (s Set) Has(fs ...Feature) bool {
	for _, f := range fs {
		if _, ok := s[f]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
