package data

import (
	"fmt"
	"os"

	"github.com/lgs/server/internal/component"
	"gopkg.in/yaml.v3"
)

// Spawn is a single entity placed in the world at startup.
type Spawn struct {
	Name string
	ID   uint32
	Kind component.Kind
}

type spawnEntry struct {
	Name string `yaml:"name"`
	ID   uint32 `yaml:"id"`
	Kind string `yaml:"kind"` // pc, npc, mob, pet, trust
}

type spawnFile struct {
	Spawns []spawnEntry `yaml:"spawns"`
}

var spawnKinds = map[string]component.Kind{
	"pc":    component.KindPC,
	"npc":   component.KindNPC,
	"mob":   component.KindMob,
	"pet":   component.KindPet,
	"trust": component.KindTrust,
}

// LoadSpawnList loads the startup spawn list from a YAML file.
func LoadSpawnList(path string) ([]Spawn, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawns: %w", err)
	}
	return parseSpawnList(raw)
}

func parseSpawnList(raw []byte) ([]Spawn, error) {
	var f spawnFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse spawns: %w", err)
	}
	out := make([]Spawn, 0, len(f.Spawns))
	for i, e := range f.Spawns {
		kind, ok := spawnKinds[e.Kind]
		if !ok {
			return nil, fmt.Errorf("parse spawns: entry %d (%s): unknown kind %q", i, e.Name, e.Kind)
		}
		out = append(out, Spawn{Name: e.Name, ID: e.ID, Kind: kind})
	}
	return out, nil
}
