package backend

import "time"

// Grounding is the backend's signed similarity/support scalar, rendered
// qualitatively by pkg/format (§4.2).
type Grounding struct {
	Strength float64 `json:"strength"`
}

// Diversity is the backend's [0,1] diversity scalar for a concept's evidence set.
type Diversity struct {
	Score float64 `json:"score"`
}

// Evidence is a single supporting instance for a concept or relationship.
type Evidence struct {
	Quote    string `json:"quote"`
	FullText string `json:"full_text,omitempty"`
	SourceID string `json:"source_id,omitempty"`
}

// ConceptSummary is the compact shape returned by search and related-concept listings.
type ConceptSummary struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Similarity float64    `json:"similarity,omitempty"`
	Grounding  *Grounding `json:"grounding,omitempty"`
	Diversity  *Diversity `json:"diversity,omitempty"`
}

// ConceptDetails is the full shape returned by concept/details.
type ConceptDetails struct {
	ConceptSummary
	Evidence    []Evidence `json:"evidence,omitempty"`
	OntologyIDs []string   `json:"ontology_ids,omitempty"`
}

// SearchResults wraps the concept/source/document search response families.
type SearchResults struct {
	Concepts  []ConceptSummary  `json:"concepts,omitempty"`
	Sources   []SourceSummary   `json:"sources,omitempty"`
	Documents []DocumentSummary `json:"documents,omitempty"`
	Total     int               `json:"total"`
}

// SourceSummary is a compact source search hit.
type SourceSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DocumentSummary is a compact document search hit.
type DocumentSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PathNode and PathRelationship describe a single hop in a traversal path.
type PathNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type PathRelationship struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// ConnectionPath is a single traversal path between two concepts.
type ConnectionPath struct {
	Nodes         []PathNode         `json:"nodes"`
	Relationships []PathRelationship `json:"relationships"`
	Hops          int                `json:"hops"`
}

// ConnectionResult is the response of concept/connect.
type ConnectionResult struct {
	Paths     []ConnectionPath `json:"paths"`
	Grounding *Grounding       `json:"grounding,omitempty"`
}

// RelatedConceptsResult is the response of concept/related.
type RelatedConceptsResult struct {
	Concepts []ConceptSummary `json:"concepts"`
}

// Ontology describes a single named ontology.
type Ontology struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	ConceptsN   int       `json:"concepts_count,omitempty"`
}

// OntologyList wraps ontology/list.
type OntologyList struct {
	Ontologies []Ontology `json:"ontologies"`
}

// OntologyFiles wraps ontology/files.
type OntologyFiles struct {
	Files []string `json:"files"`
}

// ScoreEntry is a single concept/edge scoring result.
type ScoreEntry struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// ScoreResult wraps the ontology scores/score/score_all/candidates/affinity/edges family.
type ScoreResult struct {
	Entries []ScoreEntry `json:"entries"`
}

// AnnealingProposal describes one pending reassignment/dissolve proposal.
type AnnealingProposal struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// AnnealingProposals wraps ontology/proposals.
type AnnealingProposals struct {
	Proposals []AnnealingProposal `json:"proposals"`
}

// Job describes a single backend job.
type Job struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// JobList wraps job/list.
type JobList struct {
	Jobs []Job `json:"jobs"`
}

// IngestResult is the response of ingest/text and ingest/file (single file).
type IngestResult struct {
	JobID       string `json:"job_id"`
	Status      string `json:"status"`
	ConceptsNew int    `json:"concepts_new,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// IngestBatchResult aggregates a multi-file ingest/file batch.
type IngestBatchResult struct {
	Succeeded []IngestResult    `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}

// IngestDirectoryResult is the (spec-mandated) placeholder returned by
// ingest/directory; see DESIGN.md's open-question decision.
type IngestDirectoryResult struct {
	Status    string   `json:"status"`
	Files     []string `json:"files"`
	Ontology  string   `json:"ontology"`
	Recursive bool     `json:"recursive"`
}

// SourceMetadata is the response of the source tool's metadata branch.
type SourceMetadata struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	MimeType string `json:"mime_type,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// SourceImage is the response of the source tool's image branch.
type SourceImage struct {
	Base64   string `json:"base64"`
	MimeType string `json:"mime_type"`
}

// EpistemicStatusEntry describes one concept's epistemic status.
type EpistemicStatusEntry struct {
	ConceptID string  `json:"concept_id"`
	Status    string  `json:"status"`
	Score     float64 `json:"score,omitempty"`
}

// EpistemicStatusList wraps epistemic_status/list.
type EpistemicStatusList struct {
	Entries []EpistemicStatusEntry `json:"entries"`
}

// EpistemicMeasurement wraps epistemic_status/measure.
type EpistemicMeasurement struct {
	SampleSize int     `json:"sample_size"`
	Score      float64 `json:"score"`
	Stored     bool    `json:"stored"`
}

// PolarityAxisResult wraps analyze_polarity_axis.
type PolarityAxisResult struct {
	Axis       string           `json:"axis"`
	Candidates []ConceptSummary `json:"candidates"`
}

// Artifact describes a stored artifact.
type Artifact struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Created string `json:"created,omitempty"`
}

// ArtifactList wraps artifact/list.
type ArtifactList struct {
	Artifacts []Artifact `json:"artifacts"`
}

// ArtifactPayload wraps artifact/payload.
type ArtifactPayload struct {
	Artifact
	Payload string `json:"payload"`
}

// Document describes a single ingested document.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DocumentList wraps document/list.
type DocumentList struct {
	Documents []Document `json:"documents"`
}

// DocumentContent wraps document/show.
type DocumentContent struct {
	Document
	Content string `json:"content"`
}

// DocumentConcepts wraps document/concepts.
type DocumentConcepts struct {
	Concepts []ConceptSummary `json:"concepts"`
}

// GraphEntity is a generic create/edit payload echo for graph/create and graph/edit.
type GraphEntity struct {
	Entity string                 `json:"entity"`
	ID     string                 `json:"id"`
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// GraphList wraps graph/list.
type GraphList struct {
	Entities []GraphEntity `json:"entities"`
}

// GraphQueueOpResult is the per-operation result of graph/queue.
type GraphQueueOpResult struct {
	Index  int    `json:"index"`
	Status string `json:"status"` // "success", "error", "skipped"
	Detail string `json:"detail,omitempty"`
}

// GraphQueueResult wraps graph/queue.
type GraphQueueResult struct {
	Results []GraphQueueOpResult `json:"results"`
}

// DatabaseStats / Info / Health / SystemStatus back the five backend-served
// MCP resources (mcp/allowed-paths reads the allowlist instead).
type DatabaseStats struct {
	Concepts      int `json:"concepts"`
	Relationships int `json:"relationships"`
	Sources       int `json:"sources"`
}

type DatabaseInfo struct {
	Version string `json:"version"`
	Engine  string `json:"engine"`
}

type HealthStatus struct {
	Healthy bool   `json:"healthy"`
	Detail  string `json:"detail,omitempty"`
}

type SystemStatus struct {
	Uptime  string `json:"uptime"`
	Healthy bool   `json:"healthy"`
}

// TokenResponse is the OAuth2 client-credentials token endpoint response shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
