package graph

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"osmff/pkg/logging"
)

var (
	// ErrZeroNodes is returned for graph files declaring no nodes.
	ErrZeroNodes = errors.New("graph must contain at least one node")
	// ErrTruncated is returned when the file ends before all declared
	// records have been read.
	ErrTruncated = errors.New("unexpected end of graph file")
	// ErrBadRecord is returned for node or edge lines with missing fields.
	ErrBadRecord = errors.New("malformed record")
)

// ParseError describes a failure to parse one graph file. It is fatal for
// that file only; directory loading continues with the remaining files.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a plain-text .fmi graph file: any number of leading '#' comment
// lines, the node count, the edge count, then one line per node
// ("id secondary-id lat lon") and one line per edge ("src tgt weight").
// Edges must be grouped by source ascending; offsets for sources without
// outgoing edges are back-filled while scanning.
func Parse(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	logging.Debug("parsing graph", "path", path)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	next := func() (string, error) {
		for sc.Scan() {
			lineNo++
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", ErrTruncated
	}

	// Skip the comment header.
	line, err := next()
	if err != nil {
		return nil, &ParseError{Path: path, Line: lineNo, Err: err}
	}
	for strings.HasPrefix(line, "#") {
		line, err = next()
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
	}

	numNodes, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, &ParseError{Path: path, Line: lineNo, Err: err}
	}
	if numNodes <= 0 {
		return nil, &ParseError{Path: path, Line: lineNo, Err: ErrZeroNodes}
	}

	line, err = next()
	if err != nil {
		return nil, &ParseError{Path: path, Line: lineNo, Err: err}
	}
	numEdges, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, &ParseError{Path: path, Line: lineNo, Err: err}
	}

	nodes := make([]Node, 0, numNodes)
	for i := 0; i < numNodes; i++ {
		line, err = next()
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &ParseError{Path: path, Line: lineNo, Err: ErrBadRecord}
		}
		// fields[0] is the original id, fields[1] a secondary id;
		// node ids are assigned densely by position.
		lat, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		lon, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		nodes = append(nodes, Node{ID: i, Lat: lat, Lon: lon})
	}
	logging.Debug("parsed nodes", "count", numNodes)

	edges := make([]Edge, 0, numEdges)
	offsets := make([]int, numNodes+1)
	nextSrc := 0
	offset := 0
	for i := 0; i < numEdges; i++ {
		line, err = next()
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, &ParseError{Path: path, Line: lineNo, Err: ErrBadRecord}
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		tgt, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		dist, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		if src < 0 || src >= numNodes || tgt < 0 || tgt >= numNodes {
			return nil, &ParseError{Path: path, Line: lineNo, Err: ErrBadRecord}
		}

		// Back-fill offsets for sources with no outgoing edges.
		if src >= nextSrc {
			for j := nextSrc; j <= src; j++ {
				offsets[j] = offset
			}
			nextSrc = src + 1
		}
		offset++

		edges = append(edges, Edge{Src: src, Tgt: tgt, Dist: dist})
	}
	for i := nextSrc; i <= numNodes; i++ {
		offsets[i] = numEdges
	}
	logging.Debug("parsed edges and computed offsets", "count", numEdges)

	return &Graph{
		NumNodes: numNodes,
		NumEdges: numEdges,
		nodes:    nodes,
		edges:    edges,
		offsets:  offsets,
	}, nil
}
