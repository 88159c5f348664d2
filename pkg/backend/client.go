package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"
)

// TokenSetter accepts the bearer token attached to every outbound request.
// It has the same method set as pkg/oauth.TokenSetter, so a Client can be
// handed to oauth.NewManager directly.
type TokenSetter interface {
	SetBearerToken(token string)
}

// Client is the typed wrapper the core depends on: one method per backend
// endpoint family (§6.2), opaque everywhere else in the module. Grounded on
// the teacher's pkg/api/v1.Client interface-per-concern style.
type Client interface {
	TokenSetter

	// Search
	SearchConcepts(ctx context.Context, query string, params map[string]interface{}) (*SearchResults, error)
	SearchSources(ctx context.Context, query string, params map[string]interface{}) (*SearchResults, error)
	SearchDocuments(ctx context.Context, query string, params map[string]interface{}) (*SearchResults, error)

	// Concepts
	GetConceptDetails(ctx context.Context, id string, params map[string]interface{}) (*ConceptDetails, error)
	FindRelatedConcepts(ctx context.Context, id string, params map[string]interface{}) (*RelatedConceptsResult, error)
	FindConnection(ctx context.Context, fromID, toID string, params map[string]interface{}) (*ConnectionResult, error)
	FindConnectionBySearch(ctx context.Context, fromQuery, toQuery string, params map[string]interface{}) (*ConnectionResult, error)

	// Ontology
	ListOntologies(ctx context.Context) (*OntologyList, error)
	GetOntologyInfo(ctx context.Context, name string) (*Ontology, error)
	ListOntologyFiles(ctx context.Context, name string) (*OntologyFiles, error)
	CreateOntology(ctx context.Context, name, description string) (*Ontology, error)
	RenameOntology(ctx context.Context, name, newName string) (*Ontology, error)
	DeleteOntology(ctx context.Context, name string) error
	OntologyLifecycle(ctx context.Context, name, action string) (*Ontology, error)
	OntologyScores(ctx context.Context, name string) (*ScoreResult, error)
	OntologyScore(ctx context.Context, name, conceptID string) (*ScoreEntry, error)
	OntologyScoreAll(ctx context.Context, name string) (*ScoreResult, error)
	OntologyCandidates(ctx context.Context, name string, params map[string]interface{}) (*ScoreResult, error)
	OntologyAffinity(ctx context.Context, name, conceptID string) (*ScoreResult, error)
	OntologyEdges(ctx context.Context, name string) (*ScoreResult, error)
	OntologyReassign(ctx context.Context, name, conceptID, targetOntology string) error
	OntologyDissolve(ctx context.Context, name string) error
	OntologyProposals(ctx context.Context, name string) (*AnnealingProposals, error)
	ReviewProposal(ctx context.Context, proposalID, status string) error
	TriggerAnnealingCycle(ctx context.Context, name string) (*AnnealingProposals, error)

	// Jobs
	GetJobStatus(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, params map[string]interface{}) (*JobList, error)
	ApproveJob(ctx context.Context, id string) (*Job, error)
	CancelJob(ctx context.Context, id string) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
	DeleteJobs(ctx context.Context, dryRun bool) (*JobList, error)

	// Ingest
	IngestText(ctx context.Context, text string, params map[string]interface{}) (*IngestResult, error)
	IngestFile(ctx context.Context, path string, params map[string]interface{}) (*IngestResult, error)

	// Source
	GetSourceMetadata(ctx context.Context, id string) (*SourceMetadata, error)
	GetSourceImageBase64(ctx context.Context, id string) (*SourceImage, error)

	// Epistemic
	ListEpistemicStatus(ctx context.Context) (*EpistemicStatusList, error)
	GetEpistemicStatus(ctx context.Context, conceptID string) (*EpistemicStatusEntry, error)
	MeasureEpistemicStatus(ctx context.Context, conceptID string, params map[string]interface{}) (*EpistemicMeasurement, error)

	// Polarity
	AnalyzePolarityAxis(ctx context.Context, params map[string]interface{}) (*PolarityAxisResult, error)

	// Artifacts
	ListArtifacts(ctx context.Context) (*ArtifactList, error)
	GetArtifact(ctx context.Context, id string) (*Artifact, error)
	GetArtifactPayload(ctx context.Context, id string) (*ArtifactPayload, error)

	// Documents
	ListDocuments(ctx context.Context) (*DocumentList, error)
	GetDocumentContent(ctx context.Context, id string) (*DocumentContent, error)
	GetDocumentConcepts(ctx context.Context, id string) (*DocumentConcepts, error)

	// Graph CRUD
	GraphCreate(ctx context.Context, entity string, fields map[string]interface{}) (*GraphEntity, error)
	GraphEdit(ctx context.Context, entity, id string, fields map[string]interface{}) (*GraphEntity, error)
	GraphDelete(ctx context.Context, entity, id string) error
	GraphList(ctx context.Context, entity string) (*GraphList, error)

	// Database/system info
	GetDatabaseStats(ctx context.Context) (*DatabaseStats, error)
	GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error)
	GetDatabaseHealth(ctx context.Context) (*HealthStatus, error)
	GetSystemStatus(ctx context.Context) (*SystemStatus, error)
	GetAPIHealth(ctx context.Context) (*HealthStatus, error)
}

// httpClient is the only implementation of Client. It holds its bearer
// token in an atomic value so C5's refresh goroutine can update it without
// a lock and dispatch-path readers never see a torn value.
type httpClient struct {
	baseURL string
	http    *http.Client
	token   atomic.Value // string
}

// NewClient constructs a Client pointed at baseURL.
func NewClient(baseURL string) Client {
	c := &httpClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	c.token.Store("")
	return c
}

// SetBearerToken implements TokenSetter. Called only by pkg/oauth.Manager.
func (c *httpClient) SetBearerToken(token string) {
	c.token.Store(token)
}

func (c *httpClient) bearerToken() string {
	v, _ := c.token.Load().(string)
	return v
}

func (c *httpClient) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearerToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: request to %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read response from %s: %w", u, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		he := NewHTTPError(resp.StatusCode, u, http.StatusText(resp.StatusCode))
		he.Body = string(raw)
		return he
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: decode response from %s: %w", u, err)
	}
	return nil
}

func toQuery(params map[string]interface{}) url.Values {
	q := url.Values{}
	for k, v := range params {
		if v == nil {
			continue
		}
		q.Set(k, fmt.Sprintf("%v", v))
	}
	return q
}
