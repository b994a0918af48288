package features

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/detector"
)

// hipReferenceOffset is how far above the right hip the hip_angle
// reference point sits, in normalized units.
const hipReferenceOffset = 0.1

// angleDef describes an angle feature as the angle at Vertex between the
// segments to A and C.
type angleDef struct {
	feature   Feature
	a, vertex detector.Joint
	c         detector.Joint
}

var angleDefs = []angleDef{
	// Arm raised sideways: angle at the shoulder between the shoulder line
	// and the wrist, 180 when the arm extends the shoulder line.
	{LeftArm, detector.RightShoulder, detector.LeftShoulder, detector.LeftWrist},
	{RightArm, detector.LeftShoulder, detector.RightShoulder, detector.RightWrist},

	{LeftShoulder, detector.LeftHip, detector.LeftShoulder, detector.LeftElbow},
	{RightShoulder, detector.RightHip, detector.RightShoulder, detector.RightElbow},
	{LeftElbow, detector.LeftShoulder, detector.LeftElbow, detector.LeftWrist},
	{RightElbow, detector.RightShoulder, detector.RightElbow, detector.RightWrist},
	{LeftLeg, detector.LeftHip, detector.LeftKnee, detector.LeftAnkle},
	{RightLeg, detector.RightHip, detector.RightKnee, detector.RightAnkle},
}

type positionDef struct {
	feature Feature
	joint   detector.Joint
	useX    bool
}

var positionDefs = []positionDef{
	{LeftAnkleX, detector.LeftAnkle, true},
	{LeftAnkleY, detector.LeftAnkle, false},
	{RightAnkleX, detector.RightAnkle, true},
	{RightAnkleY, detector.RightAnkle, false},
	{LeftHeelY, detector.LeftHeel, false},
	{RightHeelY, detector.RightHeel, false},
	{LeftToeY, detector.LeftFootIndex, false},
	{RightToeY, detector.RightFootIndex, false},
}

// Extract computes every feature whose landmarks are present. It never
// returns nil; a nil landmark set yields an empty Set.
func Extract(lm *detector.BodyLandmarks) Set {
	fs := make(Set, len(All))
	if lm == nil {
		return fs
	}

	vec := func(j detector.Joint) (r3.Vec, bool) {
		p, ok := lm.Get(j)
		return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}, ok
	}

	for _, def := range angleDefs {
		a, okA := vec(def.a)
		b, okB := vec(def.vertex)
		c, okC := vec(def.c)
		if okA && okB && okC {
			fs[def.feature] = Angle(a, b, c)
		}
	}

	lh, okLH := vec(detector.LeftHip)
	rh, okRH := vec(detector.RightHip)
	ls, okLS := vec(detector.LeftShoulder)
	rs, okRS := vec(detector.RightShoulder)

	if okLH && okRH && okLS && okRS {
		midHip := r3.Scale(0.5, r3.Add(lh, rh))
		midShoulder := r3.Scale(0.5, r3.Add(ls, rs))
		fs[TorsoLean] = Lean(midHip, midShoulder)
	}
	if okLH && okRH {
		ref := r3.Vec{X: rh.X, Y: rh.Y - hipReferenceOffset, Z: rh.Z}
		fs[HipAngle] = Angle(lh, rh, ref)
	}

	for _, def := range positionDefs {
		p, ok := lm.Get(def.joint)
		if !ok {
			continue
		}
		v := p.Y
		if def.useX {
			v = p.X
		}
		fs[def.feature] = finite(v)
	}

	return fs
}

// Angle returns the angle at vertex b between segments b->a and b->c, in
// degrees. A zero-length segment yields 0.
func Angle(a, b, c r3.Vec) float64 {
	v1 := r3.Sub(a, b)
	v2 := r3.Sub(c, b)

	n1 := r3.Norm(v1)
	n2 := r3.Norm(v2)
	if n1 == 0 || n2 == 0 {
		return 0
	}

	return finite(degrees(r3.Dot(v1, v2) / (n1 * n2)))
}

// Lean returns how far the hip->shoulder line deviates from straight up in
// the image plane, in degrees. Image y grows downward, so up is (0, -1).
func Lean(hip, shoulder r3.Vec) float64 {
	torso := r3.Vec{X: shoulder.X - hip.X, Y: shoulder.Y - hip.Y}
	up := r3.Vec{Y: -1}

	n := r3.Norm(torso)
	if n == 0 {
		return 0
	}
	return finite(degrees(r3.Dot(torso, up) / n))
}

// degrees converts a cosine to an angle, clamping into acos's domain.
func degrees(cos float64) float64 {
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
