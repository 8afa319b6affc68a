// Package mapdata supplies the static knowledge base the search engine
// operates on: named cities with planar coordinates and the weighted roads
// between them. It ships a built-in map of the Netherlands and can load
// caller-supplied maps from JSON files.
package mapdata

import (
	"fmt"

	"github.com/paulmach/orb"

	"wayfinder/search"
)

// City is a named location. Coordinates are kilometres on a local planar
// grid, so straight-line distances between cities come out in kilometres as
// well.
type City struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Road connects two cities with a driving distance in kilometres. Roads
// are undirected; one record per road is enough.
type Road struct {
	From string `json:"from"`
	To   string `json:"to"`
	Km   int    `json:"km"`
}

// Map is an immutable city/road data set together with the search graph
// built from it.
type Map struct {
	cities []City
	roads  []Road
	graph  *search.Graph
	coords map[string]orb.Point
}

// New builds a Map from city and road declarations. Every road must
// reference declared cities.
func New(cities []City, roads []Road) (*Map, error) {
	m := &Map{
		cities: cities,
		roads:  roads,
		graph:  search.NewGraph(),
		coords: make(map[string]orb.Point, len(cities)),
	}

	for _, c := range cities {
		if _, ok := m.coords[c.Name]; ok {
			return nil, fmt.Errorf("mapdata: duplicate city %q", c.Name)
		}
		m.coords[c.Name] = orb.Point{c.X, c.Y}
		m.graph.AddNode(c.Name)
	}

	for _, r := range roads {
		if _, ok := m.coords[r.From]; !ok {
			return nil, fmt.Errorf("mapdata: road %s-%s references unknown city %q", r.From, r.To, r.From)
		}
		if _, ok := m.coords[r.To]; !ok {
			return nil, fmt.Errorf("mapdata: road %s-%s references unknown city %q", r.From, r.To, r.To)
		}
		if err := m.graph.AddEdge(r.From, r.To, r.Km); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Graph returns the search graph over the map's cities.
func (m *Map) Graph() *search.Graph {
	return m.graph
}

// Coordinates returns the coordinate of every city.
func (m *Map) Coordinates() map[string]orb.Point {
	return m.coords
}

// Cities returns the city records in declaration order.
func (m *Map) Cities() []City {
	return m.cities
}

// Roads returns the road records in declaration order.
func (m *Map) Roads() []Road {
	return m.roads
}

// Heuristic returns the straight-line provider for this map's coordinates.
// Road distances dominate the straight line between their endpoints, so the
// derived estimates are admissible for A*.
func (m *Map) Heuristic() search.StraightLine {
	return search.StraightLine{Coordinates: m.coords}
}
