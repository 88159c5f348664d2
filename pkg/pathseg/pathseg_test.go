package pathseg

import (
	"testing"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
)

func buildPath(hops int) backend.ConnectionPath {
	nodes := make([]backend.PathNode, hops+1)
	for i := range nodes {
		nodes[i] = backend.PathNode{ID: string(rune('a' + i)), Label: string(rune('a' + i))}
	}
	rels := make([]backend.PathRelationship, hops)
	for i := range rels {
		rels[i] = backend.PathRelationship{From: nodes[i].ID, To: nodes[i+1].ID, Type: "RELATED_TO"}
	}
	return backend.ConnectionPath{Nodes: nodes, Relationships: rels, Hops: hops}
}

func TestSplitShortPathIsSingleSegment(t *testing.T) {
	path := buildPath(5)
	segs := Split(path)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment for hops=5, got %d", len(segs))
	}
	if len(segs[0].Relationships) != 5 || len(segs[0].Nodes) != 6 {
		t.Fatalf("unexpected segment shape: %+v", segs[0])
	}
}

func TestSplitElevenHopsYieldsThreeSegments(t *testing.T) {
	path := buildPath(11)
	segs := Split(path)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments for hops=11, got %d", len(segs))
	}

	wantRels := []int{5, 5, 1}
	wantNodes := []int{6, 6, 2}
	for i, seg := range segs {
		if len(seg.Relationships) != wantRels[i] {
			t.Errorf("segment %d: expected %d relationships, got %d", i, wantRels[i], len(seg.Relationships))
		}
		if len(seg.Nodes) != wantNodes[i] {
			t.Errorf("segment %d: expected %d nodes, got %d", i, wantNodes[i], len(seg.Nodes))
		}
	}
}

func TestSplitIsLengthPreservingWithOneNodeOverlap(t *testing.T) {
	path := buildPath(11)
	segs := Split(path)

	var reconstructed []backend.PathNode
	for i, seg := range segs {
		start := 0
		if i > 0 {
			start = 1 // drop the overlapping first node, already the previous segment's last
		}
		reconstructed = append(reconstructed, seg.Nodes[start:]...)
	}

	if len(reconstructed) != len(path.Nodes) {
		t.Fatalf("expected %d reconstructed nodes, got %d", len(path.Nodes), len(reconstructed))
	}
	for i, n := range reconstructed {
		if n.ID != path.Nodes[i].ID {
			t.Errorf("node %d: expected %q, got %q", i, path.Nodes[i].ID, n.ID)
		}
	}

	for i := 0; i < len(segs)-1; i++ {
		lastOfCurrent := segs[i].Nodes[len(segs[i].Nodes)-1]
		firstOfNext := segs[i+1].Nodes[0]
		if lastOfCurrent.ID != firstOfNext.ID {
			t.Errorf("segment %d/%d: expected overlap node to match, got %q vs %q", i, i+1, lastOfCurrent.ID, firstOfNext.ID)
		}
	}
}
