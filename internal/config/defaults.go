package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/amazeing/internal/camera"
	"github.com/vovakirdan/amazeing/internal/maze"
	"github.com/vovakirdan/amazeing/internal/world"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		World: WorldConfig{
			RoomSize:        maze.DefaultSize,
			CellSize:        world.DefaultCellSize,
			ChunkRange:      world.DefaultChunkRange,
			MonsterDistance: world.DefaultMonsterDistance,
		},
		Camera: CameraConfig{
			LookStep:   camera.LookStep,
			MoveStep:   camera.MoveStep,
			TurnPixels: 40,
			FovDegrees: 45,
		},
		HUD: HUDConfig{
			NameSeconds: 5,
			MapRadius:   1,
		},
		Saves: SavesConfig{
			RedisTTL: 30 * 24 * time.Hour,
		},
	}
}
