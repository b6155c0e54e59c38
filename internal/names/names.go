// Package names generates pseudo-English room names from digraph chains.
package names

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/amazeing/internal/maze"
	"github.com/vovakirdan/amazeing/internal/seed"
)

//go:embed digraphs.yaml
var digraphsYAML []byte

const (
	minLength    = 4
	maxLength    = 9
	backtrackLen = 3

	// maxBacktracks bounds generation when the tables keep dead-ending.
	maxBacktracks = 64
)

// Continuation holds the letters that may follow a digraph.
type Continuation struct {
	Middle string `yaml:"middle"`
	End    string `yaml:"end"`
}

// Tables are the digraph tables names are built from.
type Tables struct {
	Seeds       []string                `yaml:"seeds"`
	Transitions map[string]Continuation `yaml:"transitions"`
}

var (
	defaultTables     *Tables
	defaultTablesErr  error
	defaultTablesOnce sync.Once
)

// Default returns the embedded English digraph tables.
// It panics if the embedded file is malformed, which only a broken build can cause.
func Default() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables, defaultTablesErr = Parse(digraphsYAML)
	})
	if defaultTablesErr != nil {
		panic(defaultTablesErr)
	}
	return defaultTables
}

// Parse decodes digraph tables from YAML.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("names: cannot parse tables: %w", err)
	}
	if len(t.Seeds) == 0 {
		return nil, fmt.Errorf("names: tables have no seed digraphs")
	}
	for _, s := range t.Seeds {
		if len(s) != 2 {
			return nil, fmt.Errorf("names: seed %q is not a digraph", s)
		}
	}
	return &t, nil
}

// Generate returns the name of room c.
func Generate(worldSeed uint64, c maze.Coord) string {
	return Default().Generate(seed.ForRoom(worldSeed, c))
}

// Display wraps a room name the way the HUD shows it.
func Display(worldSeed uint64, c maze.Coord) string {
	return "– " + Generate(worldSeed, c) + " –"
}

// Generate builds a name of 4 to 9 letters from rng.
//
// The first two letters are a seed digraph; every following letter is drawn
// from the continuations of the last two letters, using the end set for the
// final letter. When no continuation exists the last three letters are
// dropped and generation resumes.
func (t *Tables) Generate(rng *rand.Rand) string {
	target := minLength + rng.IntN(maxLength-minLength+1)
	name := make([]byte, 0, maxLength)
	backtracks := 0

	for len(name) < target {
		if len(name) < 2 {
			name = append(name, t.Seeds[rng.IntN(len(t.Seeds))]...)
			continue
		}

		next := t.continuation(string(name[len(name)-2:]), len(name)+1 == target)
		if next != "" {
			name = append(name, next[rng.IntN(len(next))])
			continue
		}

		if backtracks == maxBacktracks {
			break
		}
		backtracks++
		name = name[:len(name)-min(backtrackLen, len(name))]
	}

	return strings.ToUpper(string(name))
}

func (t *Tables) continuation(digraph string, last bool) string {
	c, ok := t.Transitions[digraph]
	if !ok {
		return ""
	}
	if last {
		return c.End
	}
	return c.Middle
}
