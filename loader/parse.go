package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sogra/graphdata"
)

// ErrMalformedLine reports a non-blank, non-comment line that is neither a
// well-formed "v ..." nor "e ..." record.
var ErrMalformedLine = errors.New("loader: malformed line")

// Parse reads r line by line and builds a *graphdata.DataGraph. Blank lines
// and lines whose first non-space token starts with "#" are ignored.
//
//	v <node_id:int> [label:token]   declares a vertex; missing label is "".
//	e <u:int> <v:int> [elabel:token] declares an edge; missing label is nil
//	                                  (absent), distinct from the empty string.
//
// Node ids may arrive out of order and with gaps: the final vertex count is
// max(id)+1, and any id never declared by a "v" line gets label "". An edge
// referencing an id beyond the highest declared "v" id is still accepted —
// it simply grows the vertex count, backfilling the gap the same way.
//
// direction is a Parse parameter, not encoded in the file: it is forwarded
// unchanged to graphdata.New.
func Parse(r io.Reader, directed bool) (*graphdata.DataGraph, error) {
	labels := make(map[int]string)
	maxID := -1
	var edges []graphdata.Edge

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			id, label, err := parseVertex(fields)
			if err != nil {
				return nil, fmt.Errorf("loader: line %d: %w", lineNo, err)
			}
			labels[id] = label
			if id > maxID {
				maxID = id
			}
		case "e":
			e, err := parseEdge(fields)
			if err != nil {
				return nil, fmt.Errorf("loader: line %d: %w", lineNo, err)
			}
			edges = append(edges, e)
			if e.U > maxID {
				maxID = e.U
			}
			if e.V > maxID {
				maxID = e.V
			}
		default:
			return nil, fmt.Errorf("loader: line %d: %w", lineNo, ErrMalformedLine)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("loader: scan: %w", err)
	}

	vlabels := make([]string, maxID+1)
	for id, lab := range labels {
		vlabels[id] = lab
	}

	return graphdata.New(directed, vlabels, edges)
}

func parseVertex(fields []string) (id int, label string, err error) {
	if len(fields) < 2 {
		return 0, "", ErrMalformedLine
	}
	id, err = strconv.Atoi(fields[1])
	if err != nil || id < 0 {
		return 0, "", ErrMalformedLine
	}
	if len(fields) >= 3 {
		label = fields[2]
	}
	return id, label, nil
}

func parseEdge(fields []string) (graphdata.Edge, error) {
	if len(fields) < 3 {
		return graphdata.Edge{}, ErrMalformedLine
	}
	u, errU := strconv.Atoi(fields[1])
	v, errV := strconv.Atoi(fields[2])
	if errU != nil || errV != nil || u < 0 || v < 0 {
		return graphdata.Edge{}, ErrMalformedLine
	}
	var label *string
	if len(fields) >= 4 {
		l := fields[3]
		label = &l
	}
	return graphdata.Edge{U: u, V: v, Label: label}, nil
}
