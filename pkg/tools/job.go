package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "job",
		Description: "Inspect, approve, cancel, or clean up background ingestion/processing jobs.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action":  map[string]interface{}{"type": "string", "enum": []interface{}{"status", "list", "approve", "cancel", "delete", "cleanup"}},
				"job_id":  map[string]interface{}{"type": "string"},
				"status":  map[string]interface{}{"type": "string"},
				"confirm": map[string]interface{}{"type": "boolean"},
			},
			"required": []interface{}{"action"},
		},
		Actions: map[string]ActionBinding{
			"status":  jobStatus,
			"list":    jobList,
			"approve": jobApprove,
			"cancel":  jobCancel,
			"delete":  jobDelete,
			"cleanup": jobCleanup,
		},
	})
}

func requireJobID(args map[string]interface{}) (string, error) {
	id, ok := getString(args, "job_id")
	if !ok {
		return "", newError("job action requires job_id")
	}
	return id, nil
}

func jobStatus(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, err := requireJobID(args)
	if err != nil {
		return Response{}, err
	}
	j, err := deps.Backend.GetJobStatus(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Job(j)}, nil
}

func jobList(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	params := mapOfNonCoreParams(args, "action")
	l, err := deps.Backend.ListJobs(ctx, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.JobList(l)}, nil
}

func jobApprove(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, err := requireJobID(args)
	if err != nil {
		return Response{}, err
	}
	j, err := deps.Backend.ApproveJob(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Job(j)}, nil
}

func jobCancel(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, err := requireJobID(args)
	if err != nil {
		return Response{}, err
	}
	j, err := deps.Backend.CancelJob(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Job(j)}, nil
}

func jobDelete(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, err := requireJobID(args)
	if err != nil {
		return Response{}, err
	}
	if err := deps.Backend.DeleteJob(ctx, id); err != nil {
		return Response{}, err
	}
	return Response{Text: "Job " + id + " deleted."}, nil
}

// jobCleanup implements job/cleanup (R2): the core forwards dry_run=true
// to the backend regardless of the caller's own dry_run field unless the
// caller explicitly sets confirm=true.
func jobCleanup(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	confirm := boolOr(args, "confirm", false)
	l, err := deps.Backend.DeleteJobs(ctx, !confirm)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.JobList(l)}, nil
}
