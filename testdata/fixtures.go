// Package testdata embeds landmark recordings used by tests.
package testdata

import (
	"embed"
	"fmt"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/recording"
)

//go:embed recordings/*.json
var recordingsFS embed.FS

// Recording names
const (
	Standing   = "standing"
	TPose      = "tpose"
	Star       = "star"
	ArmsRaised = "arms_raised"
	// Game is a two pose game (T-Pose then Star Pose) sampled at 10Hz for a
	// 1s ready hold, 3s pose hold and 1s result.
	Game = "game"
)

// LoadRecording loads an embedded recording by name.
func LoadRecording(name string) (*recording.Recording, error) {
	data, err := recordingsFS.ReadFile("recordings/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("load recording %s: %w", name, err)
	}
	return recording.Parse(data)
}

// Names lists the embedded recordings.
func Names() []string {
	entries, err := recordingsFS.ReadDir("recordings")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		n := e.Name()
		names = append(names, n[:len(n)-len(".json")])
	}
	return names
}
