// Package pathseg chunks long graph-traversal paths into fixed-size,
// overlapping segments so formatters never have to render an
// arbitrarily long hop list in one block (C4). Pure, deterministic,
// no I/O — grounded on the teacher's pkg/transport/streamable windowing
// helpers, adapted from byte windows to node/relationship windows.
package pathseg

import "github.com/aaronsb/knowledge-graph-mcp/pkg/backend"

const chunkSize = 5

// Segment is one readable slice of a longer traversal path.
type Segment struct {
	Nodes         []backend.PathNode
	Relationships []backend.PathRelationship
}

// Split breaks path into segments of at most chunkSize relationships
// each. Adjacent segments overlap by exactly one node: the last node of
// segment i equals the first node of segment i+1. Paths with Hops <= 5
// are returned as a single segment covering the whole path.
func Split(path backend.ConnectionPath) []Segment {
	if path.Hops <= chunkSize || len(path.Relationships) <= chunkSize {
		return []Segment{{Nodes: path.Nodes, Relationships: path.Relationships}}
	}

	var segments []Segment
	rels := path.Relationships
	nodes := path.Nodes

	for start := 0; start < len(rels); start += chunkSize {
		end := start + chunkSize
		if end > len(rels) {
			end = len(rels)
		}
		segRels := rels[start:end]

		nodeStart := start
		nodeEnd := end + 1
		if nodeEnd > len(nodes) {
			nodeEnd = len(nodes)
		}
		segNodes := nodes[nodeStart:nodeEnd]

		segments = append(segments, Segment{Nodes: segNodes, Relationships: segRels})
	}
	return segments
}
