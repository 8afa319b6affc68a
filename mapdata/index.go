package mapdata

import (
	"github.com/dhconnelly/rtreego"
)

// pointTolerance gives city points a tiny positive extent; rtreego rejects
// zero-size rectangles.
const pointTolerance = 1e-6

// cityEntry wraps a city for R-tree storage.
type cityEntry struct {
	name string
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *cityEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// CityIndex answers nearest-city queries over a map's coordinates. Route
// requests that arrive as raw coordinates are snapped to the nearest city
// before the search runs.
type CityIndex struct {
	tree *rtreego.Rtree
}

// NewCityIndex builds the index for a map.
func NewCityIndex(m *Map) *CityIndex {
	tree := rtreego.NewTree(2, 25, 50)

	for name, p := range m.Coordinates() {
		bbox, err := rtreego.NewRect(
			rtreego.Point{p[0], p[1]},
			[]float64{pointTolerance, pointTolerance},
		)
		if err != nil {
			continue
		}
		tree.Insert(&cityEntry{name: name, bbox: bbox})
	}

	return &CityIndex{tree: tree}
}

// Nearest returns the city closest to the given coordinate. The second
// return is false only for an empty index.
func (i *CityIndex) Nearest(x, y float64) (string, bool) {
	result := i.tree.NearestNeighbor(rtreego.Point{x, y})
	if result == nil {
		return "", false
	}
	return result.(*cityEntry).name, true
}
