package mapdata

import (
	"encoding/json"
	"fmt"
	"os"
)

// mapFile is the on-disk JSON layout of a map.
type mapFile struct {
	Cities []City `json:"cities"`
	Roads  []Road `json:"roads"`
}

// LoadMap reads a map from a JSON file.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapdata: read %s: %w", path, err)
	}

	var file mapFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("mapdata: parse %s: %w", path, err)
	}

	return New(file.Cities, file.Roads)
}

// SaveMap writes a map to a JSON file.
func SaveMap(m *Map, path string) error {
	data, err := json.MarshalIndent(mapFile{Cities: m.Cities(), Roads: m.Roads()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
