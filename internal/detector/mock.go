package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	mu    sync.Mutex
	body  *BodyLandmarks
	err   error
	calls int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetLandmarks sets the landmarks that will be returned by Detect.
// A nil value simulates an empty scene.
func (m *MockDetector) SetLandmarks(body *BodyLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.body = body
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times Detect has been called.
func (m *MockDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Detect returns the pre-configured landmarks or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*BodyLandmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.body, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

func pt(x, y float64) Landmark {
	return Landmark{X: x, Y: y, Visibility: 0.95}
}

// StandingLandmarks returns a person standing upright facing the camera,
// arms relaxed and feet together. Joints on the person's left side have
// the larger x.
func StandingLandmarks() *BodyLandmarks {
	body := NewBodyLandmarks()
	body.Score = 0.95

	body.Set(Nose, pt(0.50, 0.15))
	body.Set(LeftEar, pt(0.53, 0.14))
	body.Set(RightEar, pt(0.47, 0.14))

	// Arms hang down slightly away from the body
	body.Set(LeftShoulder, pt(0.60, 0.30))
	body.Set(RightShoulder, pt(0.40, 0.30))
	body.Set(LeftElbow, pt(0.62, 0.45))
	body.Set(RightElbow, pt(0.38, 0.45))
	body.Set(LeftWrist, pt(0.63, 0.58))
	body.Set(RightWrist, pt(0.37, 0.58))

	// Legs straight, hip/knee/ankle vertically aligned
	body.Set(LeftHip, pt(0.54, 0.60))
	body.Set(RightHip, pt(0.46, 0.60))
	body.Set(LeftKnee, pt(0.54, 0.75))
	body.Set(RightKnee, pt(0.46, 0.75))
	body.Set(LeftAnkle, pt(0.54, 0.90))
	body.Set(RightAnkle, pt(0.46, 0.90))

	// Feet flat: heel slightly above the toes
	body.Set(LeftHeel, pt(0.54, 0.92))
	body.Set(RightHeel, pt(0.46, 0.92))
	body.Set(LeftFootIndex, pt(0.56, 0.93))
	body.Set(RightFootIndex, pt(0.44, 0.93))

	return body
}

// TPoseLandmarks returns a standing person with both arms stretched out
// horizontally.
func TPoseLandmarks() *BodyLandmarks {
	body := StandingLandmarks()
	body.Set(LeftElbow, pt(0.72, 0.30))
	body.Set(RightElbow, pt(0.28, 0.30))
	body.Set(LeftWrist, pt(0.85, 0.30))
	body.Set(RightWrist, pt(0.15, 0.30))
	return body
}

// StarLandmarks returns a T-pose with the feet spread wide.
func StarLandmarks() *BodyLandmarks {
	body := TPoseLandmarks()
	body.Set(LeftHip, pt(0.55, 0.60))
	body.Set(RightHip, pt(0.45, 0.60))
	body.Set(LeftKnee, pt(0.62, 0.75))
	body.Set(RightKnee, pt(0.38, 0.75))
	body.Set(LeftAnkle, pt(0.68, 0.90))
	body.Set(RightAnkle, pt(0.32, 0.90))
	body.Set(LeftHeel, pt(0.68, 0.92))
	body.Set(RightHeel, pt(0.32, 0.92))
	body.Set(LeftFootIndex, pt(0.70, 0.93))
	body.Set(RightFootIndex, pt(0.30, 0.93))
	return body
}

// FlamingoLeftLandmarks returns a person standing on the right leg with the
// left knee raised.
func FlamingoLeftLandmarks() *BodyLandmarks {
	body := StandingLandmarks()
	body.Set(LeftKnee, pt(0.58, 0.68))
	body.Set(LeftAnkle, pt(0.56, 0.78))
	body.Set(LeftHeel, pt(0.56, 0.80))
	body.Set(LeftFootIndex, pt(0.58, 0.80))
	return body
}

// ArmsRaisedLandmarks returns a standing person with both hands above the
// head, the gesture used to signal readiness.
func ArmsRaisedLandmarks() *BodyLandmarks {
	body := StandingLandmarks()
	body.Set(LeftElbow, pt(0.63, 0.18))
	body.Set(RightElbow, pt(0.37, 0.18))
	body.Set(LeftWrist, pt(0.64, 0.05))
	body.Set(RightWrist, pt(0.36, 0.05))
	return body
}
