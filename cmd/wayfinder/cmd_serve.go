package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"wayfinder/mapdata"
	"wayfinder/search"
)

var (
	serveAddr    string
	serveMapFile string
	serveConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the route search HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveMapFile, "map", "", "JSON map file (default: built-in Netherlands map)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "YAML config file")
	rootCmd.AddCommand(serveCmd)
}

// Coordinate is a planar position in the map's kilometre grid.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RouteRequest names the endpoints directly or supplies coordinates to be
// snapped to the nearest city.
type RouteRequest struct {
	From          string      `json:"from,omitempty"`
	To            string      `json:"to,omitempty"`
	Start         *Coordinate `json:"start,omitempty"`
	End           *Coordinate `json:"end,omitempty"`
	Strategy      string      `json:"strategy,omitempty"`
	ClosedList    bool        `json:"closedList,omitempty"`
	MaxExpansions int         `json:"maxExpansions,omitempty"`
}

// RouteResponse reports the outcome of one search.
type RouteResponse struct {
	Path       []string `json:"path"`
	DistanceKm int      `json:"distanceKm"`
	Expanded   int      `json:"expanded"`
	Strategy   string   `json:"strategy"`
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
}

type server struct {
	roadMap         *mapdata.Map
	index           *mapdata.CityIndex
	defaultStrategy search.Strategy
	maxExpansions   int
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// resolveEndpoint prefers a city name; a coordinate is snapped to the
// nearest city via the spatial index.
func (s *server) resolveEndpoint(name string, coord *Coordinate) (string, bool) {
	if name != "" {
		return name, s.roadMap.Graph().HasNode(name)
	}
	if coord != nil {
		return s.index.Nearest(coord.X, coord.Y)
	}
	return "", false
}

func (s *server) routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	strategy := s.defaultStrategy
	if req.Strategy != "" {
		var err error
		if strategy, err = search.ParseStrategy(req.Strategy); err != nil {
			log.Printf("❌ %v\n", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	start, ok := s.resolveEndpoint(req.From, req.Start)
	if !ok {
		writeRouteFailure(w, strategy, "could not resolve the start city")
		return
	}
	goal, ok := s.resolveEndpoint(req.To, req.End)
	if !ok {
		writeRouteFailure(w, strategy, "could not resolve the goal city")
		return
	}

	log.Printf("   Start: %s\n", start)
	log.Printf("   Goal:  %s\n", goal)
	log.Printf("   Strategy: %s\n", strategy)

	opts := []search.Option{search.WithHeuristic(s.roadMap.Heuristic())}
	if req.ClosedList {
		opts = append(opts, search.WithClosedList())
	}
	if budget := s.maxExpansions; budget > 0 || req.MaxExpansions > 0 {
		if req.MaxExpansions > 0 {
			budget = req.MaxExpansions
		}
		opts = append(opts, search.WithMaxExpansions(budget))
	}

	result, err := search.Search(r.Context(), s.roadMap.Graph(), start, goal, strategy, opts...)
	if err != nil {
		log.Printf("❌ Search failed: %v\n", err)
		writeRouteFailure(w, strategy, err.Error())
		return
	}

	response := RouteResponse{
		Path:       result.Path,
		DistanceKm: result.Cost,
		Expanded:   result.Expanded,
		Strategy:   strategy.String(),
		Success:    result.Found,
	}
	if !result.Found {
		log.Println("❌ No route found")
		response.Message = "no route between the cities"
	} else {
		log.Printf("✅ Route found: %s\n", strings.Join(result.Path, " -> "))
		log.Printf("   Distance: %d km (%d nodes expanded)\n", result.Cost, result.Expanded)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
	log.Println("========================================")
}

func writeRouteFailure(w http.ResponseWriter, strategy search.Strategy, message string) {
	log.Printf("❌ %s\n", message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RouteResponse{
		Strategy: strategy.String(),
		Success:  false,
		Message:  message,
	})
	log.Println("========================================")
}

// GET /health - Health check endpoint
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ready",
		"numCities": s.roadMap.Graph().NodeCount(),
		"numRoads":  len(s.roadMap.Roads()),
	})
}

// GET /map - Cities and roads for visualization
func (s *server) mapHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"cities": s.roadMap.Cities(),
		"roads":  s.roadMap.Roads(),
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := loadServerConfig(serveConfig)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		config.Addr = serveAddr
	}
	if serveMapFile != "" {
		config.MapFile = serveMapFile
	}

	strategy, err := search.ParseStrategy(config.DefaultStrategy)
	if err != nil {
		return err
	}

	m, err := loadMap(config.MapFile)
	if err != nil {
		return err
	}

	s := &server{
		roadMap:         m,
		index:           mapdata.NewCityIndex(m),
		defaultStrategy: strategy,
		maxExpansions:   config.MaxExpansions,
	}

	log.Println("========================================")
	log.Println("🚀 Wayfinder Route Search Server")
	log.Println("========================================")
	log.Printf("   Cities: %d\n", m.Graph().NodeCount())
	log.Printf("   Roads:  %d\n", len(m.Roads()))
	log.Printf("   Default strategy: %s\n", strategy)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /route   - Compute a route between two cities")
	log.Println("  GET  /map     - Cities and roads for visualization")
	log.Println("  GET  /health  - Check server status")
	log.Println("")
	log.Printf("Server starting on %s\n", config.Addr)
	log.Println("CORS enabled for all origins")
	log.Println("========================================")

	mux := http.NewServeMux()
	mux.HandleFunc("/route", corsMiddleware(s.routeHandler))
	mux.HandleFunc("/map", corsMiddleware(s.mapHandler))
	mux.HandleFunc("/health", corsMiddleware(s.healthHandler))

	return http.ListenAndServe(config.Addr, mux)
}
