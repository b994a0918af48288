// Package main provides a narrator hook. It turns game events into short
// spoken lines and, when a speech command is available, reads them aloud.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Request represents the event sent by the hook executor.
type Request struct {
	Event       string  `json:"event"`
	SessionID   string  `json:"session_id"`
	PoseIndex   int     `json:"pose_index"`
	PoseName    string  `json:"pose_name"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Passed      bool    `json:"passed"`
	Feedback    string  `json:"feedback"`
	Total       float64 `json:"total"`
}

// Response represents the output to the hook executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// lineFunc builds the narration for one event type.
type lineFunc func(req Request) string

var lines = map[string]lineFunc{
	"game_started": func(Request) string {
		return "Raise both arms above your head when you are ready."
	},
	"pose_shown": func(req Request) string {
		if req.Description == "" {
			return fmt.Sprintf("Next pose: %s.", req.PoseName)
		}
		return fmt.Sprintf("Next pose: %s. %s", req.PoseName, req.Description)
	},
	"pose_hold": func(req Request) string {
		return fmt.Sprintf("Hold the %s.", req.PoseName)
	},
	"pose_scored": func(req Request) string {
		if req.Passed {
			return fmt.Sprintf("Well done! %s scored %.0f.", req.PoseName, req.Score)
		}
		return fmt.Sprintf("%s scored %.0f. %s", req.PoseName, req.Score, req.Feedback)
	},
	"game_over": func(req Request) string {
		return fmt.Sprintf("Game over. Your total score is %.0f.", req.Total)
	},
}

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	text, err := narrate(req)
	if err != nil {
		writeErrorResponse(err.Error())
		return
	}

	if os.Getenv("NARRATOR_SPEAK") != "" {
		if err := speak(text); err != nil {
			writeErrorResponse(fmt.Sprintf("speech failed: %v", err))
			return
		}
	}

	writeTextResponse(text)
}

// narrate returns the line for an event.
func narrate(req Request) (string, error) {
	line, ok := lines[req.Event]
	if !ok {
		return "", fmt.Errorf("unknown event: %s", req.Event)
	}
	return line(req), nil
}

// speak reads text aloud with the platform's speech command.
func speak(text string) error {
	name := "espeak"
	if runtime.GOOS == "darwin" {
		name = "say"
	}
	output, err := exec.Command(name, text).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}

func writeErrorResponse(errMsg string) {
	json.NewEncoder(os.Stdout).Encode(Response{
		Success: false,
		Error:   errMsg,
	})
}

func writeTextResponse(text string) {
	data, _ := json.Marshal(map[string]string{"text": text})
	json.NewEncoder(os.Stdout).Encode(Response{
		Success: true,
		Data:    data,
	})
}
