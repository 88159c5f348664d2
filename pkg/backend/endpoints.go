package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *httpClient) SearchConcepts(ctx context.Context, query string, params map[string]interface{}) (*SearchResults, error) {
	q := toQuery(params)
	q.Set("query", query)
	var out SearchResults
	if err := c.doJSON(ctx, http.MethodGet, "/search/concepts", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) SearchSources(ctx context.Context, query string, params map[string]interface{}) (*SearchResults, error) {
	q := toQuery(params)
	q.Set("query", query)
	var out SearchResults
	if err := c.doJSON(ctx, http.MethodGet, "/search/sources", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) SearchDocuments(ctx context.Context, query string, params map[string]interface{}) (*SearchResults, error) {
	q := toQuery(params)
	q.Set("query", query)
	var out SearchResults
	if err := c.doJSON(ctx, http.MethodGet, "/search/documents", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetConceptDetails(ctx context.Context, id string, params map[string]interface{}) (*ConceptDetails, error) {
	var out ConceptDetails
	if err := c.doJSON(ctx, http.MethodGet, "/concepts/"+id, toQuery(params), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) FindRelatedConcepts(ctx context.Context, id string, params map[string]interface{}) (*RelatedConceptsResult, error) {
	var out RelatedConceptsResult
	if err := c.doJSON(ctx, http.MethodGet, "/concepts/"+id+"/related", toQuery(params), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) FindConnection(ctx context.Context, fromID, toID string, params map[string]interface{}) (*ConnectionResult, error) {
	q := toQuery(params)
	q.Set("from_id", fromID)
	q.Set("to_id", toID)
	var out ConnectionResult
	if err := c.doJSON(ctx, http.MethodGet, "/concepts/connect", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) FindConnectionBySearch(ctx context.Context, fromQuery, toQueryStr string, params map[string]interface{}) (*ConnectionResult, error) {
	q := toQuery(params)
	q.Set("from_query", fromQuery)
	q.Set("to_query", toQueryStr)
	var out ConnectionResult
	if err := c.doJSON(ctx, http.MethodGet, "/concepts/connect/search", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ListOntologies(ctx context.Context) (*OntologyList, error) {
	var out OntologyList
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetOntologyInfo(ctx context.Context, name string) (*Ontology, error) {
	var out Ontology
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies/"+name, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ListOntologyFiles(ctx context.Context, name string) (*OntologyFiles, error) {
	var out OntologyFiles
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies/"+name+"/files", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) CreateOntology(ctx context.Context, name, description string) (*Ontology, error) {
	var out Ontology
	body := map[string]interface{}{"name": name, "description": description}
	if err := c.doJSON(ctx, http.MethodPost, "/ontologies", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) RenameOntology(ctx context.Context, name, newName string) (*Ontology, error) {
	var out Ontology
	body := map[string]interface{}{"new_name": newName}
	if err := c.doJSON(ctx, http.MethodPatch, "/ontologies/"+name, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) DeleteOntology(ctx context.Context, name string) error {
	return c.doJSON(ctx, http.MethodDelete, "/ontologies/"+name, nil, nil, nil)
}

func (c *httpClient) OntologyLifecycle(ctx context.Context, name, action string) (*Ontology, error) {
	var out Ontology
	body := map[string]interface{}{"action": action}
	if err := c.doJSON(ctx, http.MethodPost, "/ontologies/"+name+"/lifecycle", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) OntologyScores(ctx context.Context, name string) (*ScoreResult, error) {
	var out ScoreResult
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies/"+name+"/scores", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) OntologyScore(ctx context.Context, name, conceptID string) (*ScoreEntry, error) {
	var out ScoreEntry
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies/"+name+"/scores/"+conceptID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) OntologyScoreAll(ctx context.Context, name string) (*ScoreResult, error) {
	var out ScoreResult
	if err := c.doJSON(ctx, http.MethodPost, "/ontologies/"+name+"/score_all", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) OntologyCandidates(ctx context.Context, name string, params map[string]interface{}) (*ScoreResult, error) {
	var out ScoreResult
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies/"+name+"/candidates", toQuery(params), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) OntologyAffinity(ctx context.Context, name, conceptID string) (*ScoreResult, error) {
	var out ScoreResult
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies/"+name+"/affinity/"+conceptID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) OntologyEdges(ctx context.Context, name string) (*ScoreResult, error) {
	var out ScoreResult
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies/"+name+"/edges", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) OntologyReassign(ctx context.Context, name, conceptID, targetOntology string) error {
	body := map[string]interface{}{"concept_id": conceptID, "target_ontology": targetOntology}
	return c.doJSON(ctx, http.MethodPost, "/ontologies/"+name+"/reassign", nil, body, nil)
}

func (c *httpClient) OntologyDissolve(ctx context.Context, name string) error {
	return c.doJSON(ctx, http.MethodPost, "/ontologies/"+name+"/dissolve", nil, nil, nil)
}

func (c *httpClient) OntologyProposals(ctx context.Context, name string) (*AnnealingProposals, error) {
	var out AnnealingProposals
	if err := c.doJSON(ctx, http.MethodGet, "/ontologies/"+name+"/proposals", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ReviewProposal(ctx context.Context, proposalID, status string) error {
	body := map[string]interface{}{"status": status}
	return c.doJSON(ctx, http.MethodPost, "/proposals/"+proposalID+"/review", nil, body, nil)
}

func (c *httpClient) TriggerAnnealingCycle(ctx context.Context, name string) (*AnnealingProposals, error) {
	var out AnnealingProposals
	if err := c.doJSON(ctx, http.MethodPost, "/ontologies/"+name+"/annealing_cycle", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetJobStatus(ctx context.Context, id string) (*Job, error) {
	var out Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ListJobs(ctx context.Context, params map[string]interface{}) (*JobList, error) {
	var out JobList
	if err := c.doJSON(ctx, http.MethodGet, "/jobs", toQuery(params), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ApproveJob(ctx context.Context, id string) (*Job, error) {
	var out Job
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/"+id+"/approve", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) CancelJob(ctx context.Context, id string) (*Job, error) {
	var out Job
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/"+id+"/cancel", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) DeleteJob(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/jobs/"+id, nil, nil, nil)
}

func (c *httpClient) DeleteJobs(ctx context.Context, dryRun bool) (*JobList, error) {
	var out JobList
	q := url.Values{}
	q.Set("dry_run", fmt.Sprintf("%t", dryRun))
	if err := c.doJSON(ctx, http.MethodDelete, "/jobs", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) IngestText(ctx context.Context, text string, params map[string]interface{}) (*IngestResult, error) {
	body := map[string]interface{}{"text": text}
	for k, v := range params {
		body[k] = v
	}
	var out IngestResult
	if err := c.doJSON(ctx, http.MethodPost, "/ingest/text", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) IngestFile(ctx context.Context, path string, params map[string]interface{}) (*IngestResult, error) {
	body := map[string]interface{}{"path": path}
	for k, v := range params {
		body[k] = v
	}
	var out IngestResult
	if err := c.doJSON(ctx, http.MethodPost, "/ingest/file", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetSourceMetadata(ctx context.Context, id string) (*SourceMetadata, error) {
	var out SourceMetadata
	if err := c.doJSON(ctx, http.MethodGet, "/sources/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetSourceImageBase64(ctx context.Context, id string) (*SourceImage, error) {
	var out SourceImage
	if err := c.doJSON(ctx, http.MethodGet, "/sources/"+id+"/image", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ListEpistemicStatus(ctx context.Context) (*EpistemicStatusList, error) {
	var out EpistemicStatusList
	if err := c.doJSON(ctx, http.MethodGet, "/epistemic_status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetEpistemicStatus(ctx context.Context, conceptID string) (*EpistemicStatusEntry, error) {
	var out EpistemicStatusEntry
	if err := c.doJSON(ctx, http.MethodGet, "/epistemic_status/"+conceptID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) MeasureEpistemicStatus(ctx context.Context, conceptID string, params map[string]interface{}) (*EpistemicMeasurement, error) {
	body := map[string]interface{}{"concept_id": conceptID}
	for k, v := range params {
		body[k] = v
	}
	var out EpistemicMeasurement
	if err := c.doJSON(ctx, http.MethodPost, "/epistemic_status/measure", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) AnalyzePolarityAxis(ctx context.Context, params map[string]interface{}) (*PolarityAxisResult, error) {
	var out PolarityAxisResult
	if err := c.doJSON(ctx, http.MethodPost, "/polarity/analyze", nil, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ListArtifacts(ctx context.Context) (*ArtifactList, error) {
	var out ArtifactList
	if err := c.doJSON(ctx, http.MethodGet, "/artifacts", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetArtifact(ctx context.Context, id string) (*Artifact, error) {
	var out Artifact
	if err := c.doJSON(ctx, http.MethodGet, "/artifacts/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetArtifactPayload(ctx context.Context, id string) (*ArtifactPayload, error) {
	var out ArtifactPayload
	if err := c.doJSON(ctx, http.MethodGet, "/artifacts/"+id+"/payload", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ListDocuments(ctx context.Context) (*DocumentList, error) {
	var out DocumentList
	if err := c.doJSON(ctx, http.MethodGet, "/documents", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetDocumentContent(ctx context.Context, id string) (*DocumentContent, error) {
	var out DocumentContent
	if err := c.doJSON(ctx, http.MethodGet, "/documents/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetDocumentConcepts(ctx context.Context, id string) (*DocumentConcepts, error) {
	var out DocumentConcepts
	if err := c.doJSON(ctx, http.MethodGet, "/documents/"+id+"/concepts", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GraphCreate(ctx context.Context, entity string, fields map[string]interface{}) (*GraphEntity, error) {
	var out GraphEntity
	if err := c.doJSON(ctx, http.MethodPost, "/graph/"+entity, nil, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GraphEdit(ctx context.Context, entity, id string, fields map[string]interface{}) (*GraphEntity, error) {
	var out GraphEntity
	if err := c.doJSON(ctx, http.MethodPatch, "/graph/"+entity+"/"+id, nil, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GraphDelete(ctx context.Context, entity, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/graph/"+entity+"/"+id, nil, nil, nil)
}

func (c *httpClient) GraphList(ctx context.Context, entity string) (*GraphList, error) {
	var out GraphList
	if err := c.doJSON(ctx, http.MethodGet, "/graph/"+entity, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetDatabaseStats(ctx context.Context) (*DatabaseStats, error) {
	var out DatabaseStats
	if err := c.doJSON(ctx, http.MethodGet, "/database/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error) {
	var out DatabaseInfo
	if err := c.doJSON(ctx, http.MethodGet, "/database/info", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetDatabaseHealth(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/database/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	var out SystemStatus
	if err := c.doJSON(ctx, http.MethodGet, "/system/status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetAPIHealth(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
