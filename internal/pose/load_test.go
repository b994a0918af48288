package pose

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
)

func TestLoadCatalog(t *testing.T) {
	t.Run("default templates load back", func(t *testing.T) {
		data, err := MarshalCatalog(DefaultTemplates())
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, data, 0644))

		c, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultCatalog().Names(), c.Names())

		star, _ := c.Get(2)
		assert.Equal(t, CheckStar, star.Check)
		assert.Equal(t, 15.0, star.Tolerances.For(features.TorsoLean))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestParseCatalog(t *testing.T) {
	t.Run("generic pose", func(t *testing.T) {
		c, err := ParseCatalog([]byte(`{
			"poses": [{
				"name": "Arms Up",
				"description": "Raise both arms",
				"angles": [{"feature": "left_shoulder", "target": 170}],
				"tolerances": {"default": 20}
			}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, 100.0, c.Score(features.Set{features.LeftShoulder: 170}, 0))
	})

	t.Run("unknown check loads but scores 0", func(t *testing.T) {
		c, err := ParseCatalog([]byte(`{
			"poses": [{
				"name": "Warrior",
				"angles": [{"feature": "torso_lean", "target": 0}],
				"tolerances": {"default": 20},
				"special_check": "warrior"
			}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, 0.0, c.Score(features.Set{features.TorsoLean: 0}, 0))
	})

	cases := []struct {
		name string
		json string
	}{
		{"no poses", `{"poses": []}`},
		{"missing name", `{"poses": [{"tolerances": {"default": 20}}]}`},
		{"zero default tolerance", `{"poses": [{"name": "A", "tolerances": {"default": 0}}]}`},
		{"negative feature tolerance", `{"poses": [{"name": "A", "tolerances": {"default": 10, "per_feature": {"left_arm": -1}}}]}`},
		{"unknown feature", `{"poses": [{"name": "A", "angles": [{"feature": "tail", "target": 10}], "tolerances": {"default": 10}}]}`},
		{"position used as angle", `{"poses": [{"name": "A", "angles": [{"feature": "left_ankle_x", "target": 10}], "tolerances": {"default": 10}}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.json))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseCatalog([]byte(`{"poses":`))
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidCatalog))
	})
}
