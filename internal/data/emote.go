package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type emoteEntry struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

type emoteFile struct {
	Emotes []emoteEntry `yaml:"emotes"`
	Modes  []emoteEntry `yaml:"modes"`
}

// EmoteTable maps script-facing names to emote and emote-mode codes.
// It only feeds constants to Lua; dispatch never consults it.
type EmoteTable struct {
	emotes map[string]uint8
	modes  map[string]uint8
}

func (t *EmoteTable) Emote(name string) (uint8, bool) {
	v, ok := t.emotes[name]
	return v, ok
}

func (t *EmoteTable) Mode(name string) (uint8, bool) {
	v, ok := t.modes[name]
	return v, ok
}

// Emotes returns a copy of the name → code map.
func (t *EmoteTable) Emotes() map[string]int { return widen(t.emotes) }

// Modes returns a copy of the name → code map.
func (t *EmoteTable) Modes() map[string]int { return widen(t.modes) }

// Count returns the number of named emotes.
func (t *EmoteTable) Count() int { return len(t.emotes) }

func widen(m map[string]uint8) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = int(v)
	}
	return out
}

// LoadEmoteTable loads emote names from a YAML file.
func LoadEmoteTable(path string) (*EmoteTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read emotes: %w", err)
	}
	return ParseEmoteTable(raw)
}

// ParseEmoteTable decodes an emote table from YAML bytes.
func ParseEmoteTable(raw []byte) (*EmoteTable, error) {
	var f emoteFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse emotes: %w", err)
	}
	t := &EmoteTable{
		emotes: make(map[string]uint8, len(f.Emotes)),
		modes:  make(map[string]uint8, len(f.Modes)),
	}
	if err := fill(t.emotes, f.Emotes, "emote"); err != nil {
		return nil, err
	}
	if err := fill(t.modes, f.Modes, "mode"); err != nil {
		return nil, err
	}
	return t, nil
}

func fill(dst map[string]uint8, entries []emoteEntry, what string) error {
	for _, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("parse emotes: %s with id %d has no name", what, e.ID)
		}
		if e.ID < 0 || e.ID > 0xFF {
			return fmt.Errorf("parse emotes: %s %s id %d out of byte range", what, e.Name, e.ID)
		}
		if _, dup := dst[e.Name]; dup {
			return fmt.Errorf("parse emotes: duplicate %s %s", what, e.Name)
		}
		dst[e.Name] = uint8(e.ID)
	}
	return nil
}
