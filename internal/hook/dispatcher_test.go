package hook

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/session"
)

func TestNewRequest(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	req := NewRequest(session.Event{
		Type:      session.EventPoseScored,
		SessionID: "s1",
		PoseIndex: 3,
		PoseName:  "Tandem Stance",
		Score:     64,
		Total:     132,
		At:        at,
	})

	if req.Event != "pose_scored" {
		t.Errorf("expected event pose_scored, got %q", req.Event)
	}
	if req.PoseIndex != 3 || req.PoseName != "Tandem Stance" || req.Total != 132 {
		t.Errorf("unexpected request %+v", req)
	}
	if req.Timestamp != at.UnixMilli() {
		t.Errorf("expected timestamp %d, got %d", at.UnixMilli(), req.Timestamp)
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	root := t.TempDir()
	out := filepath.Join(root, "events.log")

	hookDir := writeManifest(t, root, "recorder", Manifest{
		Name:       "recorder",
		Executable: "record.sh",
		Events:     []string{"pose_shown"},
	})
	script := "#!/bin/sh\ncat >> " + out + "\necho >> " + out + "\necho '{\"success\":true}'\n"
	if err := os.WriteFile(filepath.Join(hookDir, "record.sh"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	manager := NewManager(root)
	if err := manager.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	var mu sync.Mutex
	var results int
	d := NewDispatcher(manager, NewExecutor(5*time.Second))
	d.OnResult = func(h *Hook, resp *Response, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			t.Errorf("hook %s failed: %v", h.Manifest.Name, err)
		}
		results++
	}

	ctx := context.Background()
	if n := d.Dispatch(ctx, session.Event{Type: session.EventGameStarted}); n != 0 {
		t.Errorf("expected no hook for game_started, got %d", n)
	}
	if n := d.Dispatch(ctx, session.Event{Type: session.EventPoseShown, PoseName: "T-Pose"}); n != 1 {
		t.Errorf("expected 1 hook for pose_shown, got %d", n)
	}
	d.Wait()

	if results != 1 {
		t.Errorf("expected 1 result, got %d", results)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("hook did not write its input: %v", err)
	}
	if !strings.Contains(string(data), `"pose_name":"T-Pose"`) {
		t.Errorf("hook input missing pose name: %s", data)
	}
}
