package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named.
const DefaultLevel = "slopes.json"

// Load reads a level by base name, preferring a copy under levels/ on disk
// over the embedded one. The .json suffix is optional.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	if data, err := os.ReadFile(filepath.Join("levels", clean)); err == nil {
		return Parse(clean, data)
	}
	return LoadLevelFromFS(clean)
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, cleanLevelName(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(name, data)
}

// Parse decodes and validates level JSON.
func Parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: validate %s: %w", name, err)
	}
	return &lvl, nil
}

func cleanLevelName(name string) string {
	if name == "" {
		return DefaultLevel
	}
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
