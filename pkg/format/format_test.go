package format

import (
	"strings"
	"testing"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
)

func TestSearchResultsIsPure(t *testing.T) {
	payload := &backend.SearchResults{
		Total: 1,
		Concepts: []backend.ConceptSummary{
			{ID: "c1", Label: "gravity", Similarity: 0.9, Grounding: &backend.Grounding{Strength: 0.8}},
		},
	}
	a := SearchResults(payload)
	b := SearchResults(payload)
	if a != b {
		t.Fatal("expected formatter to be pure (identical output for identical input)")
	}
}

func TestSearchResultsEmptyYieldsNoResultsHint(t *testing.T) {
	out := SearchResults(&backend.SearchResults{})
	if !strings.Contains(out, "No results found") {
		t.Errorf("expected a no-results hint, got %q", out)
	}
	if !strings.Contains(out, "threshold") {
		t.Errorf("expected an actionable hint mentioning threshold, got %q", out)
	}
}

func TestGroundingBands(t *testing.T) {
	cases := []struct {
		strength float64
		want     string
	}{
		{0.9, "Well-supported"},
		{0.5, "Moderate"},
		{0.3, "Moderate"},
		{0.1, "Unexplored/Tentative"},
		{0.0, "Unexplored/Tentative"},
		{-0.5, "Contested/Contradicted"},
	}
	for _, tc := range cases {
		if got := groundingBand(tc.strength); got != tc.want {
			t.Errorf("groundingBand(%v) = %q, want %q", tc.strength, got, tc.want)
		}
	}
}

func TestSignedPercentFormatsWithSign(t *testing.T) {
	if got := signedPercent(0.72); got != "+72%" {
		t.Errorf("signedPercent(0.72) = %q, want +72%%", got)
	}
	if got := signedPercent(-0.4); got != "-40%" {
		t.Errorf("signedPercent(-0.4) = %q, want -40%%", got)
	}
}

func TestNegativeGroundingAlwaysYieldsDeniedGlyph(t *testing.T) {
	g := &backend.Grounding{Strength: -0.2}
	d := &backend.Diversity{Score: 0.95}
	if got := diversityGlyph(g, d); got != "❌" {
		t.Errorf("expected contested glyph for negative grounding regardless of diversity, got %q", got)
	}
}

func TestConceptDetailsTruncatesFullTextNotQuote(t *testing.T) {
	longText := strings.Repeat("x", 300)
	c := &backend.ConceptDetails{
		ConceptSummary: backend.ConceptSummary{ID: "c1", Label: "gravity"},
		Evidence: []backend.Evidence{
			{Quote: strings.Repeat("q", 300), FullText: longText},
		},
	}

	out := ConceptDetails(c, true)
	if strings.Contains(out, longText) {
		t.Error("expected full_text to be truncated when truncate_evidence=true")
	}
	if !strings.Contains(out, strings.Repeat("q", 300)) {
		t.Error("expected quote to never be truncated")
	}
}

func TestConceptDetailsNoTruncationWhenDisabled(t *testing.T) {
	longText := strings.Repeat("x", 300)
	c := &backend.ConceptDetails{
		ConceptSummary: backend.ConceptSummary{ID: "c1", Label: "gravity"},
		Evidence:       []backend.Evidence{{Quote: "q", FullText: longText}},
	}
	out := ConceptDetails(c, false)
	if !strings.Contains(out, longText) {
		t.Error("expected full_text preserved when truncate_evidence=false")
	}
}

func TestConnectionAppliesPathSegmentation(t *testing.T) {
	nodes := make([]backend.PathNode, 12)
	for i := range nodes {
		nodes[i] = backend.PathNode{ID: string(rune('a' + i)), Label: string(rune('a' + i))}
	}
	rels := make([]backend.PathRelationship, 11)
	for i := range rels {
		rels[i] = backend.PathRelationship{From: nodes[i].ID, To: nodes[i+1].ID, Type: "RELATED_TO"}
	}
	result := &backend.ConnectionResult{
		Paths: []backend.ConnectionPath{{Nodes: nodes, Relationships: rels, Hops: 11}},
	}

	out := Connection(result, true)
	if !strings.Contains(out, "Segment 1") || !strings.Contains(out, "Segment 3") {
		t.Errorf("expected segmented output for an 11-hop path, got %q", out)
	}
}

func TestConnectionWithoutSegmentationRendersSinglePass(t *testing.T) {
	nodes := make([]backend.PathNode, 12)
	for i := range nodes {
		nodes[i] = backend.PathNode{ID: string(rune('a' + i)), Label: string(rune('a' + i))}
	}
	rels := make([]backend.PathRelationship, 11)
	for i := range rels {
		rels[i] = backend.PathRelationship{From: nodes[i].ID, To: nodes[i+1].ID, Type: "RELATED_TO"}
	}
	result := &backend.ConnectionResult{
		Paths: []backend.ConnectionPath{{Nodes: nodes, Relationships: rels, Hops: 11}},
	}

	out := Connection(result, false)
	if strings.Contains(out, "Segment") {
		t.Errorf("expected no segmentation markers when segmentPaths=false, got %q", out)
	}
}

func TestConnectionEmptyYieldsHint(t *testing.T) {
	out := Connection(&backend.ConnectionResult{}, true)
	if !strings.Contains(out, "No path exists") {
		t.Errorf("expected no-path hint, got %q", out)
	}
}

func TestJobListEmptyYieldsHint(t *testing.T) {
	out := JobList(&backend.JobList{})
	if !strings.Contains(out, "No jobs match") {
		t.Errorf("expected no-jobs hint, got %q", out)
	}
}

func TestSourceMetadataHintsImageForRecognizedExtension(t *testing.T) {
	out := SourceMetadata(&backend.SourceMetadata{ID: "s1", Title: "diagram.PNG"})
	if !strings.Contains(out, "image available") {
		t.Errorf("expected image hint for .PNG title, got %q", out)
	}
}

func TestSourceMetadataOmitsImageHintForNonImageExtension(t *testing.T) {
	out := SourceMetadata(&backend.SourceMetadata{ID: "s1", Title: "report.pdf"})
	if strings.Contains(out, "image available") {
		t.Errorf("expected no image hint for .pdf title, got %q", out)
	}
}
