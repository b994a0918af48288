package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/pose"
	"github.com/xibuifgo/Group4-Game-Therapy/testdata"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func saveRecording(t *testing.T, name string) string {
	t.Helper()
	rec, err := testdata.LoadRecording(name)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name+".json")
	require.NoError(t, rec.Save(path))
	return path
}

func TestPosesCommand(t *testing.T) {
	out, err := execute(t, "poses")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, pose.DefaultCatalog().Count())
	assert.Contains(t, lines[0], "Normal Standing Stance")
	assert.Contains(t, lines[1], "[angles]")
	assert.Contains(t, lines[2], "[star_pose]")
}

func TestPosesCommand_JSON(t *testing.T) {
	out, err := execute(t, "poses", "--json")
	require.NoError(t, err)

	catalog, err := pose.ParseCatalog([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, pose.DefaultCatalog().Names(), catalog.Names())
}

func TestPosesCommand_MissingCatalog(t *testing.T) {
	_, err := execute(t, "poses", "--catalog", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestTrainCommand(t *testing.T) {
	recPath := saveRecording(t, testdata.TPose)
	outPath := filepath.Join(t.TempDir(), "trained.json")

	out, err := execute(t, "train", "-r", recPath, "-n", "My T", "--tolerance", "15", "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote My T")

	catalog, err := pose.LoadCatalog(outPath)
	require.NoError(t, err)
	require.Equal(t, 1, catalog.Count())

	tmpl, _ := catalog.Get(0)
	assert.Equal(t, "My T", tmpl.Name)
	assert.Equal(t, 15.0, tmpl.Tolerances.Default)
	assert.InDelta(t, 180, tmpl.Target(features.LeftArm, 0), 8)

	out, err = execute(t, "poses", "--catalog", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "My T")
}

func TestTrainCommand_RequiredFlags(t *testing.T) {
	_, err := execute(t, "train", "-n", "x")
	assert.Error(t, err)

	_, err = execute(t, "train", "-r", filepath.Join(t.TempDir(), "missing.json"), "-n", "x")
	assert.Error(t, err)
}

func TestReplayCommand(t *testing.T) {
	recPath := saveRecording(t, testdata.Game)

	catalogPath := filepath.Join(t.TempDir(), "catalog.json")
	var picked []pose.Template
	for _, tmpl := range pose.DefaultTemplates() {
		if tmpl.Name == "T-Pose" || tmpl.Name == "Star Pose" {
			picked = append(picked, tmpl)
		}
	}
	data, err := pose.MarshalCatalog(picked)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(catalogPath, data, 0644))

	t.Setenv("POSEGAME_READY_HOLD", "1s")
	t.Setenv("POSEGAME_HOLD_DURATION", "3s")
	t.Setenv("POSEGAME_RESULT_DURATION", "1s")

	out, err := execute(t, "replay", "--catalog", catalogPath, "-r", recPath, "-v")
	require.NoError(t, err)

	assert.Contains(t, out, "game_started")
	assert.Contains(t, out, "game_over")
	assert.Regexp(t, `T-Pose\s+\d+\.\d\s+passed`, out)
	assert.Regexp(t, `Star Pose\s+\d+\.\d\s+passed`, out)
	assert.Contains(t, out, "Total score:")
	assert.NotContains(t, out, "Recording ended")
}

func TestReplayCommand_Incomplete(t *testing.T) {
	recPath := saveRecording(t, testdata.Standing)

	out, err := execute(t, "replay", "-r", recPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total score: 0")
	assert.Contains(t, out, "Recording ended during preview of pose 1")
}
