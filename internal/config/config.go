// Package config provides YAML-based tuning for the maze world, camera,
// HUD and save slots.
package config

import (
	"math"
	"time"

	"github.com/vovakirdan/amazeing/internal/camera"
	"github.com/vovakirdan/amazeing/internal/world"
)

// MazeConfig contains all tunable parameters of the game.
type MazeConfig struct {
	World  WorldConfig  `yaml:"world"`
	Camera CameraConfig `yaml:"camera"`
	HUD    HUDConfig    `yaml:"hud"`
	Saves  SavesConfig  `yaml:"saves"`
}

// WorldConfig defines room dimensions and streaming.
type WorldConfig struct {
	RoomSize        int     `yaml:"room_size"`
	CellSize        float32 `yaml:"cell_size"`
	ChunkRange      int     `yaml:"chunk_range"`
	MonsterDistance float32 `yaml:"monster_distance"`
}

// CameraConfig defines look and movement sensitivity.
type CameraConfig struct {
	LookStep   float32 `yaml:"look_step"`
	MoveStep   float32 `yaml:"move_step"`
	TurnPixels float32 `yaml:"turn_pixels"` // Pointer delta emulated per turn key tick
	FovDegrees float32 `yaml:"fov_degrees"`
}

// HUDConfig defines on-screen text timing and the map.
type HUDConfig struct {
	NameSeconds float64 `yaml:"name_seconds"`
	MapRadius   int     `yaml:"map_radius"`
}

// SavesConfig defines save slot storage.
type SavesConfig struct {
	RedisTTL time.Duration `yaml:"redis_ttl"`
}

// Params converts the world section to generator parameters.
func (c MazeConfig) Params() world.Params {
	return world.Params{
		RoomSize:        c.World.RoomSize,
		CellSize:        c.World.CellSize,
		ChunkRange:      c.World.ChunkRange,
		MonsterDistance: c.World.MonsterDistance,
	}.Normalize()
}

// CameraOptions converts the camera section to camera options.
func (c MazeConfig) CameraOptions() []camera.Option {
	opts := []camera.Option{camera.WithSteps(c.Camera.LookStep, c.Camera.MoveStep)}
	if c.Camera.FovDegrees > 0 && c.Camera.FovDegrees < 180 {
		fov := c.Camera.FovDegrees * math.Pi / 180
		opts = append(opts, camera.WithFrustum(fov, 0.05, 1024))
	}
	return opts
}

// NameDuration returns how long a room name is shown.
func (c MazeConfig) NameDuration() time.Duration {
	if c.HUD.NameSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.HUD.NameSeconds * float64(time.Second))
}

// DifficultyPreset represents a named monster density.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyMazePreset scales monster density for a difficulty preset.
// Unknown presets leave the config unchanged.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.World.MonsterDistance = 2 * world.DefaultMonsterDistance
	case DifficultyNormal:
		cfg.World.MonsterDistance = world.DefaultMonsterDistance
	case DifficultyHard:
		cfg.World.MonsterDistance = world.DefaultMonsterDistance / 2
	}
}
