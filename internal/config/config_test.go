package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 325*time.Millisecond, cfg.Gesture.TimeConstant)
	assert.Equal(t, 0.8, cfg.Gesture.VelocitySmoothing)
	assert.Equal(t, 16*time.Millisecond, cfg.Gesture.FrameInterval)
	assert.Equal(t, 4, cfg.Inner.MinItemsVisible)
	assert.Equal(t, 50, cfg.Scene.Items)
	assert.False(t, cfg.Gesture.NudgeNativeScroll)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floating.yaml")
	data := []byte(`
gesture:
  time_constant: 500ms
  nudge_native_scroll: true
inner:
  min_items_visible: 6
scene:
  index: 49
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Gesture.TimeConstant)
	assert.True(t, cfg.Gesture.NudgeNativeScroll)
	assert.Equal(t, 6, cfg.Inner.MinItemsVisible)
	assert.Equal(t, 49, cfg.Scene.Index)

	fc := cfg.Gesture.Floating()
	assert.Equal(t, 500*time.Millisecond, fc.TimeConstant)
	assert.True(t, fc.NudgeNativeScroll)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	type tc struct {
		mutate  func(v *viper.Viper)
		wantErr string
	}

	tests := map[string]tc{
		"defaults are valid": {
			mutate: func(*viper.Viper) {},
		},
		"zero time constant": {
			mutate:  func(v *viper.Viper) { v.Set("gesture.time_constant", "0s") },
			wantErr: "gesture.time_constant",
		},
		"smoothing above one": {
			mutate:  func(v *viper.Viper) { v.Set("gesture.velocity_smoothing", 1.5) },
			wantErr: "gesture.velocity_smoothing",
		},
		"no visible items": {
			mutate:  func(v *viper.Viper) { v.Set("inner.min_items_visible", 0) },
			wantErr: "inner.min_items_visible",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			tt.mutate(v)
			_, err := New(v)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
