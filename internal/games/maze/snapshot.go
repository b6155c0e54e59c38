package maze

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/maze"
)

const snapshotVersion = 1

// ErrSnapshotVersion is returned when a snapshot was written by an
// incompatible version.
var ErrSnapshotVersion = errors.New("maze: unsupported snapshot version")

// Snapshot contains everything needed to rebuild a playing session.
// Rooms are never stored: they regenerate from Seed.
type Snapshot struct {
	Version   int           `json:"version"`
	Seed      uint64        `json:"seed"`
	Eye       mgl32.Vec3    `json:"eye"`
	At        mgl32.Vec3    `json:"at"`
	Room      maze.Coord    `json:"room"`
	HasKey    bool          `json:"has_key"`
	Collected []maze.Coord  `json:"collected"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Coins returns the number of coins held in the snapshot.
func (s Snapshot) Coins() int {
	n := len(s.Collected)
	if s.HasKey {
		n--
	}
	return n
}

// Marshal encodes the snapshot as JSON.
func (s Snapshot) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("maze: encode snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a snapshot written by Marshal.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("maze: decode snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	return s, nil
}
