// Package format renders typed backend payloads into bounded plain-text
// blocks for LLM consumption (C3). Every function here is pure and
// total: payload in, string out, no I/O, no randomness, no wall-clock
// reads. Grounded on the teacher's pkg/vmcp response-rendering idiom
// (table-driven status glyphs, markdown-ish headings over raw JSON
// dumps) reconstructed from its _test.go surface plus this domain's
// own grounding/diversity vocabulary.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/allowlist"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/pathseg"
)

const truncateEvidenceLimit = 200

// imageExtensions is the set of file extensions for which SourceMetadata
// adds an "image available" hint. Genuine set membership via the comma-ok
// idiom, not a truthy-property lookup.
var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
	".svg":  {},
}

func hasImageExtension(name string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// groundingBand returns the qualitative label for a grounding strength value.
func groundingBand(strength float64) string {
	switch {
	case strength > 0.7:
		return "Well-supported"
	case strength >= 0.3:
		return "Moderate"
	case strength >= 0.0:
		return "Unexplored/Tentative"
	default:
		return "Contested/Contradicted"
	}
}

// signedPercent renders a [-1,1]-ish scalar as a signed percentage, e.g. "+72%".
func signedPercent(v float64) string {
	pct := int(v*100 + sign(v)*0.5)
	if pct >= 0 {
		return fmt.Sprintf("+%d%%", pct)
	}
	return fmt.Sprintf("%d%%", pct)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// groundingLine renders a Grounding as "<band> (<signed%>)".
func groundingLine(g *backend.Grounding) string {
	if g == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s)", groundingBand(g.Strength), signedPercent(g.Strength))
}

// diversityGlyph picks ∈ {✅, ✓, ⚠, ❌} from the sign of grounding and the
// magnitude of diversity: non-negative grounding with high diversity is
// the best signal (✅); negative grounding is always ❌ regardless of
// diversity since contested evidence isn't rescued by being varied.
func diversityGlyph(grounding *backend.Grounding, diversity *backend.Diversity) string {
	if grounding != nil && grounding.Strength < 0 {
		return "❌"
	}
	if diversity == nil {
		return "⚠"
	}
	switch {
	case diversity.Score >= 0.7:
		return "✅"
	case diversity.Score >= 0.4:
		return "✓"
	default:
		return "⚠"
	}
}

// diversityLine renders a Diversity as a 0-100% line with its authenticated glyph.
func diversityLine(grounding *backend.Grounding, diversity *backend.Diversity) string {
	if diversity == nil {
		return "unknown"
	}
	return fmt.Sprintf("%.0f%% %s", diversity.Score*100, diversityGlyph(grounding, diversity))
}

func truncate(s string) string {
	if len(s) <= truncateEvidenceLimit {
		return s
	}
	return s[:truncateEvidenceLimit] + "..."
}

func noResults(hint string) string {
	return fmt.Sprintf("No results found. %s", hint)
}

// SearchResults formats search/concept, search/source, search/document responses.
func SearchResults(r *backend.SearchResults) string {
	if r == nil || (len(r.Concepts) == 0 && len(r.Sources) == 0 && len(r.Documents) == 0) {
		return noResults("Try a lower similarity threshold or a broader query.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Search Results (%d total)\n\n", r.Total)

	for _, c := range r.Concepts {
		fmt.Fprintf(&b, "## %s\n", c.Label)
		fmt.Fprintf(&b, "- id: %s\n", c.ID)
		fmt.Fprintf(&b, "- similarity: %.2f\n", c.Similarity)
		if c.Grounding != nil {
			fmt.Fprintf(&b, "- grounding: %s\n", groundingLine(c.Grounding))
		}
		if c.Diversity != nil {
			fmt.Fprintf(&b, "- diversity: %s\n", diversityLine(c.Grounding, c.Diversity))
		}
		b.WriteString("---\n")
	}
	for _, s := range r.Sources {
		fmt.Fprintf(&b, "## %s\n- id: %s\n---\n", s.Title, s.ID)
	}
	for _, d := range r.Documents {
		fmt.Fprintf(&b, "## %s\n- id: %s\n---\n", d.Title, d.ID)
	}
	return b.String()
}

// ConceptDetails formats concept/details.
func ConceptDetails(c *backend.ConceptDetails, truncateEvidence bool) string {
	if c == nil {
		return noResults("The concept id may not exist; search first to find a valid id.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", c.Label)
	fmt.Fprintf(&b, "- id: %s\n", c.ID)
	if c.Grounding != nil {
		fmt.Fprintf(&b, "- grounding: %s\n", groundingLine(c.Grounding))
	}
	if c.Diversity != nil {
		fmt.Fprintf(&b, "- diversity: %s\n", diversityLine(c.Grounding, c.Diversity))
	}
	if len(c.OntologyIDs) > 0 {
		fmt.Fprintf(&b, "- ontologies: %s\n", strings.Join(c.OntologyIDs, ", "))
	}
	if len(c.Evidence) > 0 {
		b.WriteString("\n## Evidence\n")
		for _, e := range c.Evidence {
			full := e.FullText
			if truncateEvidence {
				full = truncate(full)
			}
			fmt.Fprintf(&b, "- quote: %q\n", e.Quote)
			if full != "" {
				fmt.Fprintf(&b, "  full_text: %q\n", full)
			}
		}
	}
	return b.String()
}

// RelatedConcepts formats concept/related.
func RelatedConcepts(r *backend.RelatedConceptsResult) string {
	if r == nil || len(r.Concepts) == 0 {
		return noResults("Try increasing max_depth.")
	}
	var b strings.Builder
	b.WriteString("# Related Concepts\n\n")
	for _, c := range r.Concepts {
		fmt.Fprintf(&b, "- %s (id: %s, similarity: %.2f)\n", c.Label, c.ID, c.Similarity)
	}
	return b.String()
}

// Connection formats concept/connect in both exact and semantic mode. When
// segmentPaths is true, path segmentation (C4) is applied to any path whose
// hop count exceeds the chunking threshold before rendering; otherwise every
// path is rendered as one block.
func Connection(r *backend.ConnectionResult, segmentPaths bool) string {
	if r == nil || len(r.Paths) == 0 {
		return noResults("No path exists between these concepts within the configured hop limit.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Connection (%d path(s) found)\n\n", len(r.Paths))
	if r.Grounding != nil {
		fmt.Fprintf(&b, "Overall grounding: %s\n\n", groundingLine(r.Grounding))
	}

	for i, path := range r.Paths {
		fmt.Fprintf(&b, "## Path %d (%d hops)\n", i+1, path.Hops)
		segments := []pathseg.Segment{{Nodes: path.Nodes, Relationships: path.Relationships}}
		if segmentPaths {
			segments = pathseg.Split(path)
		}
		for si, seg := range segments {
			if len(segments) > 1 {
				fmt.Fprintf(&b, "### Segment %d\n", si+1)
			}
			for _, n := range seg.Nodes {
				fmt.Fprintf(&b, "- %s (%s)\n", n.Label, n.ID)
			}
			for _, rel := range seg.Relationships {
				fmt.Fprintf(&b, "  -[%s]->\n", rel.Type)
			}
		}
		b.WriteString("---\n")
	}
	return b.String()
}

// Ontology formats a single ontology info response.
func Ontology(o *backend.Ontology) string {
	if o == nil {
		return noResults("The ontology name may not exist; list ontologies first.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Ontology: %s\n", o.Name)
	if o.Description != "" {
		fmt.Fprintf(&b, "- description: %s\n", o.Description)
	}
	fmt.Fprintf(&b, "- concepts: %d\n", o.ConceptsN)
	return b.String()
}

// OntologyList formats ontology/list.
func OntologyList(l *backend.OntologyList) string {
	if l == nil || len(l.Ontologies) == 0 {
		return noResults("No ontologies exist yet; create one before ingesting.")
	}
	var b strings.Builder
	b.WriteString("# Ontologies\n\n")
	for _, o := range l.Ontologies {
		fmt.Fprintf(&b, "- %s (%d concepts)\n", o.Name, o.ConceptsN)
	}
	return b.String()
}

// OntologyFiles formats ontology/files.
func OntologyFiles(f *backend.OntologyFiles) string {
	if f == nil || len(f.Files) == 0 {
		return noResults("No source files are recorded for this ontology.")
	}
	var b strings.Builder
	b.WriteString("# Ontology Files\n\n")
	for _, file := range f.Files {
		fmt.Fprintf(&b, "- %s\n", file)
	}
	return b.String()
}

// ScoreResult formats the ontology scores/score_all/candidates/affinity/edges family.
func ScoreResult(r *backend.ScoreResult) string {
	if r == nil || len(r.Entries) == 0 {
		return noResults("No scored entries are available for this ontology yet.")
	}
	var b strings.Builder
	b.WriteString("# Scores\n\n")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "- %s: %.2f\n", e.ID, e.Score)
	}
	return b.String()
}

// AnnealingProposals formats ontology/proposals.
func AnnealingProposals(r *backend.AnnealingProposals) string {
	if r == nil || len(r.Proposals) == 0 {
		return noResults("No pending annealing proposals for this ontology.")
	}
	var b strings.Builder
	b.WriteString("# Annealing Proposals\n\n")
	for _, p := range r.Proposals {
		fmt.Fprintf(&b, "- [%s] %s (%s): %s\n", p.ID, p.Kind, p.Status, p.Detail)
	}
	return b.String()
}

// Job formats a single job status response.
func Job(j *backend.Job) string {
	if j == nil {
		return noResults("The job id may not exist.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Job %s\n", j.ID)
	fmt.Fprintf(&b, "- type: %s\n", j.Type)
	fmt.Fprintf(&b, "- status: %s\n", j.Status)
	if j.Detail != "" {
		fmt.Fprintf(&b, "- detail: %s\n", j.Detail)
	}
	return b.String()
}

// JobList formats job/list and job/cleanup.
func JobList(l *backend.JobList) string {
	if l == nil || len(l.Jobs) == 0 {
		return noResults("No jobs match the given filters.")
	}
	var b strings.Builder
	b.WriteString("# Jobs\n\n")
	for _, j := range l.Jobs {
		fmt.Fprintf(&b, "- %s [%s] %s\n", j.ID, j.Type, j.Status)
	}
	return b.String()
}

// IngestResult formats a single-file ingest response.
func IngestResult(r *backend.IngestResult) string {
	if r == nil {
		return noResults("The ingest request produced no result.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Ingest Submitted\n- job_id: %s\n- status: %s\n", r.JobID, r.Status)
	if r.ConceptsNew > 0 {
		fmt.Fprintf(&b, "- new concepts: %d\n", r.ConceptsNew)
	}
	return b.String()
}

// IngestBatchResult formats a multi-file ingest batch response.
func IngestBatchResult(r *backend.IngestBatchResult) string {
	if r == nil || (len(r.Succeeded) == 0 && len(r.Failed) == 0) {
		return noResults("No files were submitted for ingestion.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Ingest Batch (%d succeeded, %d failed)\n\n", len(r.Succeeded), len(r.Failed))
	for _, s := range r.Succeeded {
		fmt.Fprintf(&b, "- OK job_id=%s status=%s\n", s.JobID, s.Status)
	}
	for path, reason := range r.Failed {
		fmt.Fprintf(&b, "- FAILED %s: %s\n", path, reason)
	}
	return b.String()
}

// SourceMetadata formats the source tool's metadata branch.
func SourceMetadata(m *backend.SourceMetadata) string {
	if m == nil {
		return noResults("Source not found.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Source %s\n- title: %s\n", m.ID, m.Title)
	if m.MimeType != "" {
		fmt.Fprintf(&b, "- mime_type: %s\n", m.MimeType)
	}
	if hasImageExtension(m.Title) {
		b.WriteString("- image available: call source with include_image=true to render it\n")
	}
	return b.String()
}

// EpistemicStatusList formats epistemic_status/list.
func EpistemicStatusList(l *backend.EpistemicStatusList) string {
	if l == nil || len(l.Entries) == 0 {
		return noResults("No epistemic status entries recorded yet.")
	}
	var b strings.Builder
	b.WriteString("# Epistemic Status\n\n")
	for _, e := range l.Entries {
		fmt.Fprintf(&b, "- %s: %s (%.2f)\n", e.ConceptID, e.Status, e.Score)
	}
	return b.String()
}

// EpistemicStatusEntry formats epistemic_status/show.
func EpistemicStatusEntry(e *backend.EpistemicStatusEntry) string {
	if e == nil {
		return noResults("No epistemic status recorded for this concept yet.")
	}
	return fmt.Sprintf("# Epistemic Status: %s\n- status: %s\n- score: %.2f\n", e.ConceptID, e.Status, e.Score)
}

// EpistemicMeasurement formats epistemic_status/measure.
func EpistemicMeasurement(m *backend.EpistemicMeasurement) string {
	if m == nil {
		return noResults("Measurement produced no result.")
	}
	return fmt.Sprintf("# Epistemic Measurement\n- sample_size: %d\n- score: %.2f\n- stored: %t\n",
		m.SampleSize, m.Score, m.Stored)
}

// PolarityAxis formats analyze_polarity_axis.
func PolarityAxis(r *backend.PolarityAxisResult) string {
	if r == nil || len(r.Candidates) == 0 {
		return noResults("No candidate concepts found along this axis.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Polarity Axis: %s\n\n", r.Axis)
	for _, c := range r.Candidates {
		fmt.Fprintf(&b, "- %s (id: %s, similarity: %.2f)\n", c.Label, c.ID, c.Similarity)
	}
	return b.String()
}

// ArtifactList formats artifact/list.
func ArtifactList(l *backend.ArtifactList) string {
	if l == nil || len(l.Artifacts) == 0 {
		return noResults("No artifacts have been generated yet.")
	}
	var b strings.Builder
	b.WriteString("# Artifacts\n\n")
	for _, a := range l.Artifacts {
		fmt.Fprintf(&b, "- %s [%s]\n", a.ID, a.Kind)
	}
	return b.String()
}

// Artifact formats artifact/show.
func Artifact(a *backend.Artifact) string {
	if a == nil {
		return noResults("Artifact not found.")
	}
	return fmt.Sprintf("# Artifact %s\n- kind: %s\n- created: %s\n", a.ID, a.Kind, a.Created)
}

// DocumentList formats document/list.
func DocumentList(l *backend.DocumentList) string {
	if l == nil || len(l.Documents) == 0 {
		return noResults("No documents have been ingested yet.")
	}
	var b strings.Builder
	b.WriteString("# Documents\n\n")
	for _, d := range l.Documents {
		fmt.Fprintf(&b, "- %s [%s]\n", d.ID, d.Title)
	}
	return b.String()
}

// DocumentContent formats document/show.
func DocumentContent(d *backend.DocumentContent) string {
	if d == nil {
		return noResults("Document not found.")
	}
	return fmt.Sprintf("# %s\n\n%s\n", d.Title, d.Content)
}

// DocumentConcepts formats document/concepts.
func DocumentConcepts(c *backend.DocumentConcepts) string {
	if c == nil || len(c.Concepts) == 0 {
		return noResults("No concepts have been extracted from this document yet.")
	}
	var b strings.Builder
	b.WriteString("# Document Concepts\n\n")
	for _, concept := range c.Concepts {
		fmt.Fprintf(&b, "- %s (id: %s)\n", concept.Label, concept.ID)
	}
	return b.String()
}

// GraphEntity formats graph/create and graph/edit.
func GraphEntity(e *backend.GraphEntity) string {
	if e == nil {
		return noResults("The operation produced no result.")
	}
	return fmt.Sprintf("# Graph entity updated: %s\n- id: %s\n", e.Entity, e.ID)
}

// GraphList formats graph/list.
func GraphList(l *backend.GraphList) string {
	if l == nil || len(l.Entities) == 0 {
		return noResults("No graph entities match the given filters.")
	}
	var b strings.Builder
	b.WriteString("# Graph Entities\n\n")
	for _, e := range l.Entities {
		fmt.Fprintf(&b, "- %s: %s\n", e.Entity, e.ID)
	}
	return b.String()
}

// GraphQueue formats graph/queue, the consolidated batch-operation result.
func GraphQueue(r *backend.GraphQueueResult) string {
	if r == nil || len(r.Results) == 0 {
		return noResults("The queue contained no operations.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Graph Queue (%d operations)\n\n", len(r.Results))
	for _, op := range r.Results {
		fmt.Fprintf(&b, "- [%d] %s", op.Index, op.Status)
		if op.Detail != "" {
			fmt.Fprintf(&b, ": %s", op.Detail)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// DatabaseStats formats database/stats.
func DatabaseStats(s *backend.DatabaseStats) string {
	if s == nil {
		return noResults("Stats unavailable.")
	}
	return fmt.Sprintf("# Database Stats\n- concepts: %d\n- relationships: %d\n- sources: %d\n",
		s.Concepts, s.Relationships, s.Sources)
}

// DatabaseInfo formats database/info.
func DatabaseInfo(i *backend.DatabaseInfo) string {
	if i == nil {
		return noResults("Info unavailable.")
	}
	return fmt.Sprintf("# Database Info\n- engine: %s\n- version: %s\n", i.Engine, i.Version)
}

// Health formats database/health and api/health.
func Health(h *backend.HealthStatus) string {
	if h == nil {
		return noResults("Health status unavailable.")
	}
	status := "healthy"
	if !h.Healthy {
		status = "unhealthy"
	}
	if h.Detail != "" {
		return fmt.Sprintf("# Health: %s\n- detail: %s\n", status, h.Detail)
	}
	return fmt.Sprintf("# Health: %s\n", status)
}

// SystemStatus formats system/status.
func SystemStatus(s *backend.SystemStatus) string {
	if s == nil {
		return noResults("System status unavailable.")
	}
	status := "healthy"
	if !s.Healthy {
		status = "unhealthy"
	}
	return fmt.Sprintf("# System Status: %s\n- uptime: %s\n", status, s.Uptime)
}

// AllowlistConfig formats mcp/allowed-paths. cfg is nil when no
// allowlist has been initialized on disk.
func AllowlistConfig(cfg *allowlist.Config, path string) string {
	if cfg == nil {
		return noResults(fmt.Sprintf("No allowlist configuration found at %s. Path-validating actions will deny until one is created.", path))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Allowed Ingestion Paths\n- config: %s\n", path)
	fmt.Fprintf(&b, "- max file size: %d MB\n- max files per directory: %d\n", cfg.MaxFileSizeMB, cfg.MaxFilesPerDirectory)
	fmt.Fprintf(&b, "\n## Allowed directories\n")
	for _, d := range cfg.AllowedDirectories {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	fmt.Fprintf(&b, "\n## Allowed patterns\n")
	for _, p := range cfg.AllowedPatterns {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	fmt.Fprintf(&b, "\n## Blocked patterns\n")
	for _, p := range cfg.BlockedPatterns {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	return b.String()
}
