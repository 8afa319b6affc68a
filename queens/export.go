package queens

import (
	"encoding/json"
	"os"
)

// File is the JSON document consumed by the board viewer:
//
//	{"n": 8, "solutions": [[{"row": 1, "col": 4}, ...], ...]}
type File struct {
	N         int        `json:"n"`
	Solutions []Solution `json:"solutions"`
}

// Export renders solutions in the viewer's JSON schema.
func Export(n int, solutions []Solution) ([]byte, error) {
	return json.MarshalIndent(File{N: n, Solutions: solutions}, "", "  ")
}

// WriteFile exports solutions to a JSON file.
func WriteFile(path string, n int, solutions []Solution) error {
	data, err := Export(n, solutions)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
