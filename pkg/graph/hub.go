package graph

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"osmff/pkg/logging"
)

// ErrNoPath is returned by ShortestDist when the forward and backward label
// lists share no hub, i.e. no path exists between the two nodes.
var ErrNoPath = errors.New("no path between nodes")

// ErrUnknownNode is returned for hub-label lines referencing a node id
// outside the graph.
var ErrUnknownNode = errors.New("hub label references unknown node")

// ErrNoHubLabels is returned by ShortestDist when the graph was loaded
// without a .hub companion file.
var ErrNoHubLabels = errors.New("graph has no hub labels")

// HubLabel is one precomputed (hub, distance) entry of a 2-hop cover.
type HubLabel struct {
	Hub  int
	Dist int
}

// HasHubLabels reports whether hub labels were loaded for this graph.
func (g *Graph) HasHubLabels() bool {
	return g.fwdLabels != nil && g.bwdLabels != nil
}

// LoadHubLabels reads a companion .hub file: the backward label count, the
// forward label count, then that many "node_id hub_id dist" lines, backward
// labels first. Label lists are sorted ascending by hub id after loading,
// which the merge-join in ShortestDist relies on.
func (g *Graph) LoadHubLabels(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	readCount := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, ErrTruncated
		}
		lineNo++
		return strconv.Atoi(strings.TrimSpace(sc.Text()))
	}

	numBackward, err := readCount()
	if err != nil {
		return &ParseError{Path: path, Line: lineNo, Err: err}
	}
	numForward, err := readCount()
	if err != nil {
		return &ParseError{Path: path, Line: lineNo, Err: err}
	}

	bwd := make([][]HubLabel, g.NumNodes)
	fwd := make([][]HubLabel, g.NumNodes)

	readLabels := func(into [][]HubLabel, count int) error {
		for i := 0; i < count; i++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return err
				}
				return ErrTruncated
			}
			lineNo++
			fields := strings.Fields(sc.Text())
			if len(fields) < 3 {
				return ErrBadRecord
			}
			node, err := strconv.Atoi(fields[0])
			if err != nil {
				return err
			}
			hub, err := strconv.Atoi(fields[1])
			if err != nil {
				return err
			}
			dist, err := strconv.Atoi(fields[2])
			if err != nil {
				return err
			}
			if node < 0 || node >= g.NumNodes {
				return fmt.Errorf("%w: %d", ErrUnknownNode, node)
			}
			into[node] = append(into[node], HubLabel{Hub: hub, Dist: dist})
		}
		return nil
	}

	if err := readLabels(bwd, numBackward); err != nil {
		return &ParseError{Path: path, Line: lineNo, Err: err}
	}
	if err := readLabels(fwd, numForward); err != nil {
		return &ParseError{Path: path, Line: lineNo, Err: err}
	}

	for _, labels := range [][][]HubLabel{bwd, fwd} {
		for _, l := range labels {
			sort.Slice(l, func(i, j int) bool { return l[i].Hub < l[j].Hub })
		}
	}

	g.bwdLabels = bwd
	g.fwdLabels = fwd
	logging.Debug("loaded hub labels", "path", path,
		"backward", numBackward, "forward", numForward)
	return nil
}

// ShortestDist returns the shortest distance from src to tgt via a merge-join
// over src's forward labels and tgt's backward labels. O(|labels|),
// independent of graph size. Returns ErrNoPath when no hub is shared and
// ErrNoHubLabels when the graph was loaded without labels.
func (g *Graph) ShortestDist(src, tgt int) (int, error) {
	if !g.HasHubLabels() {
		return 0, ErrNoHubLabels
	}
	fwd := g.fwdLabels[src]
	bwd := g.bwdLabels[tgt]

	best := Infinity
	i, j := 0, 0
	for i < len(fwd) && j < len(bwd) {
		switch {
		case fwd[i].Hub == bwd[j].Hub:
			if d := fwd[i].Dist + bwd[j].Dist; d < best {
				best = d
			}
			i++
			j++
		case fwd[i].Hub < bwd[j].Hub:
			i++
		default:
			j++
		}
	}
	if best == Infinity {
		return 0, ErrNoPath
	}
	return best, nil
}
