// Package hook runs external executables that react to game events, such
// as a narrator or a music player.
package hook

import "encoding/json"

// ManifestFile is the manifest file name expected in each hook directory.
const ManifestFile = "hook.json"

// Manifest describes a hook's metadata and the events it subscribes to.
// A hook with no events receives every event.
type Manifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Executable  string   `json:"executable"`
	Events      []string `json:"events"`
}

// Request is the JSON document written to a hook's stdin.
type Request struct {
	Event       string  `json:"event"`
	SessionID   string  `json:"session_id"`
	PoseIndex   int     `json:"pose_index"`
	PoseName    string  `json:"pose_name,omitempty"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score"`
	Passed      bool    `json:"passed"`
	Feedback    string  `json:"feedback,omitempty"`
	Total       float64 `json:"total"`
	Timestamp   int64   `json:"timestamp"`
}

// Response is the JSON document a hook writes to stdout.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Hook is a discovered hook with its manifest and location.
type Hook struct {
	Manifest   Manifest
	Path       string
	Executable string
}

// Handles reports whether the hook subscribes to event.
func (h *Hook) Handles(event string) bool {
	if len(h.Manifest.Events) == 0 {
		return true
	}
	for _, e := range h.Manifest.Events {
		if e == event {
			return true
		}
	}
	return false
}
