// Package detector provides body pose detection interfaces and landmark types.
package detector

import (
	"encoding/json"
	"fmt"
	"math"
)

// Joint identifies a body landmark following the MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
type Joint int

const (
	Nose Joint = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex
	NumJoints
)

// MinVisibility is the visibility above which a landmark counts as visible.
const MinVisibility = 0.5

// StabilityThreshold is the mean x/y movement below which two readings are
// considered the same still pose.
const StabilityThreshold = 0.02

var jointNames = [NumJoints]string{
	"nose", "left_eye_inner", "left_eye", "left_eye_outer",
	"right_eye_inner", "right_eye", "right_eye_outer",
	"left_ear", "right_ear", "mouth_left", "mouth_right",
	"left_shoulder", "right_shoulder", "left_elbow", "right_elbow",
	"left_wrist", "right_wrist", "left_pinky", "right_pinky",
	"left_index", "right_index", "left_thumb", "right_thumb",
	"left_hip", "right_hip", "left_knee", "right_knee",
	"left_ankle", "right_ankle", "left_heel", "right_heel",
	"left_foot_index", "right_foot_index",
}

// String returns the snake_case MediaPipe name of the joint.
func (j Joint) String() string {
	if j < 0 || j >= NumJoints {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

// ParseJoint looks up a joint by its snake_case name.
func ParseJoint(name string) (Joint, bool) {
	for i, n := range jointNames {
		if n == name {
			return Joint(i), true
		}
	}
	return 0, false
}

// Landmark is a single normalized body landmark. X and Y are in image
// coordinates (0..1, y grows downward); Z is relative depth.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// BodyLandmarks holds the landmarks detected for one person in one frame.
// Joints the provider did not report are simply absent from Points.
type BodyLandmarks struct {
	Points map[Joint]Landmark
	Score  float64
}

// NewBodyLandmarks creates an empty landmark set.
func NewBodyLandmarks() *BodyLandmarks {
	return &BodyLandmarks{Points: make(map[Joint]Landmark, NumJoints)}
}

// Set stores the landmark for a joint.
func (b *BodyLandmarks) Set(j Joint, lm Landmark) {
	if b.Points == nil {
		b.Points = make(map[Joint]Landmark, NumJoints)
	}
	b.Points[j] = lm
}

// Get returns the landmark for a joint and whether it is present.
func (b *BodyLandmarks) Get(j Joint) (Landmark, bool) {
	if b == nil {
		return Landmark{}, false
	}
	lm, ok := b.Points[j]
	return lm, ok
}

// Visible reports whether a joint is present with visibility above MinVisibility.
func (b *BodyLandmarks) Visible(j Joint) bool {
	lm, ok := b.Get(j)
	return ok && lm.Visibility > MinVisibility
}

// AllVisible reports whether every listed joint is visible.
func (b *BodyLandmarks) AllVisible(joints ...Joint) bool {
	for _, j := range joints {
		if !b.Visible(j) {
			return false
		}
	}
	return true
}

// Len returns the number of joints present.
func (b *BodyLandmarks) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Points)
}

// MarshalJSON encodes the landmarks as an object keyed by joint name.
func (b BodyLandmarks) MarshalJSON() ([]byte, error) {
	out := make(map[string]Landmark, len(b.Points))
	for j, lm := range b.Points {
		out[j.String()] = lm
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an object keyed by joint name. Unknown names are ignored.
func (b *BodyLandmarks) UnmarshalJSON(data []byte) error {
	var raw map[string]Landmark
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Points = make(map[Joint]Landmark, len(raw))
	for name, lm := range raw {
		if j, ok := ParseJoint(name); ok {
			b.Points[j] = lm
		}
	}
	return nil
}

// IsStable reports whether the body barely moved between two readings.
// Movement is the mean x/y distance over joints present in both. A missing
// reading on either side counts as stable.
func IsStable(cur, prev *BodyLandmarks, threshold float64) bool {
	if cur == nil || prev == nil {
		return true
	}

	var total float64
	var n int
	for j, a := range cur.Points {
		b, ok := prev.Points[j]
		if !ok {
			continue
		}
		total += math.Hypot(a.X-b.X, a.Y-b.Y)
		n++
	}
	if n == 0 {
		return true
	}
	return total/float64(n) < threshold
}
