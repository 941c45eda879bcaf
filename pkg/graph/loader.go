package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"osmff/pkg/logging"
)

// LoadDir parses every .fmi file in dir and returns the graphs indexed by
// base name. Files that fail to parse are logged and skipped so one bad file
// cannot hide the rest. A companion <name>.hub file, when present, is loaded
// into the graph; a bad hub file degrades to plain Dijkstra queries.
func LoadDir(dir string) (map[string]*Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read graph directory: %w", err)
	}

	graphs := make(map[string]*Graph)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".fmi") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".fmi")
		path := filepath.Join(dir, entry.Name())

		g, err := Parse(path)
		if err != nil {
			logging.Warn("skipping graph", "name", name, "error", err)
			continue
		}

		hubPath := filepath.Join(dir, name+".hub")
		if _, err := os.Stat(hubPath); err == nil {
			if err := g.LoadHubLabels(hubPath); err != nil {
				logging.Warn("ignoring hub labels", "name", name, "error", err)
			}
		}

		logging.Info("parsed graph", "name", name,
			"nodes", g.NumNodes, "edges", g.NumEdges, "hubLabels", g.HasHubLabels())
		graphs[name] = g
	}
	return graphs, nil
}
