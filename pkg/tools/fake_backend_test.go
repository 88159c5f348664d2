package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
)

// fakeBackend is a hand-rolled double implementing backend.Client for
// dispatcher tests. Every method returns a zero value unless a
// corresponding func field is set, so individual tests only need to
// stub the calls they exercise.
type fakeBackend struct {
	searchConceptsFn func(ctx context.Context, query string, params map[string]interface{}) (*backend.SearchResults, error)
	getJobStatusFn   func(ctx context.Context, id string) (*backend.Job, error)
	deleteJobsFn     func(ctx context.Context, dryRun bool) (*backend.JobList, error)
	graphCreateFn    func(ctx context.Context, entity string, fields map[string]interface{}) (*backend.GraphEntity, error)
	graphDeleteFn    func(ctx context.Context, entity, id string) error
	getSourceMetaFn  func(ctx context.Context, id string) (*backend.SourceMetadata, error)
}

func (f *fakeBackend) SetBearerToken(string) {}

func (f *fakeBackend) SearchConcepts(ctx context.Context, query string, params map[string]interface{}) (*backend.SearchResults, error) {
	if f.searchConceptsFn != nil {
		return f.searchConceptsFn(ctx, query, params)
	}
	return &backend.SearchResults{}, nil
}
func (f *fakeBackend) SearchSources(ctx context.Context, query string, params map[string]interface{}) (*backend.SearchResults, error) {
	return &backend.SearchResults{}, nil
}
func (f *fakeBackend) SearchDocuments(ctx context.Context, query string, params map[string]interface{}) (*backend.SearchResults, error) {
	return &backend.SearchResults{}, nil
}
func (f *fakeBackend) GetConceptDetails(ctx context.Context, id string, params map[string]interface{}) (*backend.ConceptDetails, error) {
	return &backend.ConceptDetails{}, nil
}
func (f *fakeBackend) FindRelatedConcepts(ctx context.Context, id string, params map[string]interface{}) (*backend.RelatedConceptsResult, error) {
	return &backend.RelatedConceptsResult{}, nil
}
func (f *fakeBackend) FindConnection(ctx context.Context, fromID, toID string, params map[string]interface{}) (*backend.ConnectionResult, error) {
	return &backend.ConnectionResult{}, nil
}
func (f *fakeBackend) FindConnectionBySearch(ctx context.Context, fromQuery, toQuery string, params map[string]interface{}) (*backend.ConnectionResult, error) {
	return &backend.ConnectionResult{}, nil
}
func (f *fakeBackend) ListOntologies(ctx context.Context) (*backend.OntologyList, error) {
	return &backend.OntologyList{}, nil
}
func (f *fakeBackend) GetOntologyInfo(ctx context.Context, name string) (*backend.Ontology, error) {
	return &backend.Ontology{Name: name}, nil
}
func (f *fakeBackend) ListOntologyFiles(ctx context.Context, name string) (*backend.OntologyFiles, error) {
	return &backend.OntologyFiles{}, nil
}
func (f *fakeBackend) CreateOntology(ctx context.Context, name, description string) (*backend.Ontology, error) {
	return &backend.Ontology{Name: name, Description: description}, nil
}
func (f *fakeBackend) RenameOntology(ctx context.Context, name, newName string) (*backend.Ontology, error) {
	return &backend.Ontology{Name: newName}, nil
}
func (f *fakeBackend) DeleteOntology(ctx context.Context, name string) error { return nil }
func (f *fakeBackend) OntologyLifecycle(ctx context.Context, name, action string) (*backend.Ontology, error) {
	return &backend.Ontology{Name: name}, nil
}
func (f *fakeBackend) OntologyScores(ctx context.Context, name string) (*backend.ScoreResult, error) {
	return &backend.ScoreResult{}, nil
}
func (f *fakeBackend) OntologyScore(ctx context.Context, name, conceptID string) (*backend.ScoreEntry, error) {
	return &backend.ScoreEntry{ID: conceptID}, nil
}
func (f *fakeBackend) OntologyScoreAll(ctx context.Context, name string) (*backend.ScoreResult, error) {
	return &backend.ScoreResult{}, nil
}
func (f *fakeBackend) OntologyCandidates(ctx context.Context, name string, params map[string]interface{}) (*backend.ScoreResult, error) {
	return &backend.ScoreResult{}, nil
}
func (f *fakeBackend) OntologyAffinity(ctx context.Context, name, conceptID string) (*backend.ScoreResult, error) {
	return &backend.ScoreResult{}, nil
}
func (f *fakeBackend) OntologyEdges(ctx context.Context, name string) (*backend.ScoreResult, error) {
	return &backend.ScoreResult{}, nil
}
func (f *fakeBackend) OntologyReassign(ctx context.Context, name, conceptID, targetOntology string) error {
	return nil
}
func (f *fakeBackend) OntologyDissolve(ctx context.Context, name string) error { return nil }
func (f *fakeBackend) OntologyProposals(ctx context.Context, name string) (*backend.AnnealingProposals, error) {
	return &backend.AnnealingProposals{}, nil
}
func (f *fakeBackend) ReviewProposal(ctx context.Context, proposalID, status string) error {
	return nil
}
func (f *fakeBackend) TriggerAnnealingCycle(ctx context.Context, name string) (*backend.AnnealingProposals, error) {
	return &backend.AnnealingProposals{}, nil
}
func (f *fakeBackend) GetJobStatus(ctx context.Context, id string) (*backend.Job, error) {
	if f.getJobStatusFn != nil {
		return f.getJobStatusFn(ctx, id)
	}
	return &backend.Job{ID: id}, nil
}
func (f *fakeBackend) ListJobs(ctx context.Context, params map[string]interface{}) (*backend.JobList, error) {
	return &backend.JobList{}, nil
}
func (f *fakeBackend) ApproveJob(ctx context.Context, id string) (*backend.Job, error) {
	return &backend.Job{ID: id}, nil
}
func (f *fakeBackend) CancelJob(ctx context.Context, id string) (*backend.Job, error) {
	return &backend.Job{ID: id}, nil
}
func (f *fakeBackend) DeleteJob(ctx context.Context, id string) error { return nil }
func (f *fakeBackend) DeleteJobs(ctx context.Context, dryRun bool) (*backend.JobList, error) {
	if f.deleteJobsFn != nil {
		return f.deleteJobsFn(ctx, dryRun)
	}
	return &backend.JobList{}, nil
}
func (f *fakeBackend) IngestText(ctx context.Context, text string, params map[string]interface{}) (*backend.IngestResult, error) {
	return &backend.IngestResult{}, nil
}
func (f *fakeBackend) IngestFile(ctx context.Context, path string, params map[string]interface{}) (*backend.IngestResult, error) {
	return &backend.IngestResult{}, nil
}
func (f *fakeBackend) GetSourceMetadata(ctx context.Context, id string) (*backend.SourceMetadata, error) {
	if f.getSourceMetaFn != nil {
		return f.getSourceMetaFn(ctx, id)
	}
	return &backend.SourceMetadata{ID: id}, nil
}
func (f *fakeBackend) GetSourceImageBase64(ctx context.Context, id string) (*backend.SourceImage, error) {
	return &backend.SourceImage{}, nil
}
func (f *fakeBackend) ListEpistemicStatus(ctx context.Context) (*backend.EpistemicStatusList, error) {
	return &backend.EpistemicStatusList{}, nil
}
func (f *fakeBackend) GetEpistemicStatus(ctx context.Context, conceptID string) (*backend.EpistemicStatusEntry, error) {
	return &backend.EpistemicStatusEntry{}, nil
}
func (f *fakeBackend) MeasureEpistemicStatus(ctx context.Context, conceptID string, params map[string]interface{}) (*backend.EpistemicMeasurement, error) {
	return &backend.EpistemicMeasurement{}, nil
}
func (f *fakeBackend) AnalyzePolarityAxis(ctx context.Context, params map[string]interface{}) (*backend.PolarityAxisResult, error) {
	return &backend.PolarityAxisResult{}, nil
}
func (f *fakeBackend) ListArtifacts(ctx context.Context) (*backend.ArtifactList, error) {
	return &backend.ArtifactList{}, nil
}
func (f *fakeBackend) GetArtifact(ctx context.Context, id string) (*backend.Artifact, error) {
	return &backend.Artifact{ID: id}, nil
}
func (f *fakeBackend) GetArtifactPayload(ctx context.Context, id string) (*backend.ArtifactPayload, error) {
	return &backend.ArtifactPayload{}, nil
}
func (f *fakeBackend) ListDocuments(ctx context.Context) (*backend.DocumentList, error) {
	return &backend.DocumentList{}, nil
}
func (f *fakeBackend) GetDocumentContent(ctx context.Context, id string) (*backend.DocumentContent, error) {
	return &backend.DocumentContent{}, nil
}
func (f *fakeBackend) GetDocumentConcepts(ctx context.Context, id string) (*backend.DocumentConcepts, error) {
	return &backend.DocumentConcepts{}, nil
}
func (f *fakeBackend) GraphCreate(ctx context.Context, entity string, fields map[string]interface{}) (*backend.GraphEntity, error) {
	if f.graphCreateFn != nil {
		return f.graphCreateFn(ctx, entity, fields)
	}
	return &backend.GraphEntity{Entity: entity, Fields: fields}, nil
}
func (f *fakeBackend) GraphEdit(ctx context.Context, entity, id string, fields map[string]interface{}) (*backend.GraphEntity, error) {
	return &backend.GraphEntity{Entity: entity, ID: id, Fields: fields}, nil
}
func (f *fakeBackend) GraphDelete(ctx context.Context, entity, id string) error {
	if f.graphDeleteFn != nil {
		return f.graphDeleteFn(ctx, entity, id)
	}
	return nil
}
func (f *fakeBackend) GraphList(ctx context.Context, entity string) (*backend.GraphList, error) {
	return &backend.GraphList{}, nil
}
func (f *fakeBackend) GetDatabaseStats(ctx context.Context) (*backend.DatabaseStats, error) {
	return &backend.DatabaseStats{}, nil
}
func (f *fakeBackend) GetDatabaseInfo(ctx context.Context) (*backend.DatabaseInfo, error) {
	return &backend.DatabaseInfo{}, nil
}
func (f *fakeBackend) GetDatabaseHealth(ctx context.Context) (*backend.HealthStatus, error) {
	return &backend.HealthStatus{}, nil
}
func (f *fakeBackend) GetSystemStatus(ctx context.Context) (*backend.SystemStatus, error) {
	return &backend.SystemStatus{}, nil
}
func (f *fakeBackend) GetAPIHealth(ctx context.Context) (*backend.HealthStatus, error) {
	return &backend.HealthStatus{}, nil
}

var _ backend.Client = (*fakeBackend)(nil)
