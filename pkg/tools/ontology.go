package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "ontology",
		Description: "Manage ontologies: list, inspect, create, rename, delete, score concepts, and review annealing proposals.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action": map[string]interface{}{"type": "string", "enum": []interface{}{
					"list", "info", "files", "create", "rename", "delete", "lifecycle",
					"scores", "score", "score_all", "candidates", "affinity", "edges",
					"reassign", "dissolve", "proposals", "proposal_review", "annealing_cycle",
				}},
				"name":            map[string]interface{}{"type": "string"},
				"new_name":        map[string]interface{}{"type": "string"},
				"description":     map[string]interface{}{"type": "string"},
				"lifecycle_state": map[string]interface{}{"type": "string"},
				"concept_id":      map[string]interface{}{"type": "string"},
				"target_ontology": map[string]interface{}{"type": "string"},
				"proposal_id":     map[string]interface{}{"type": "string"},
				"status":          map[string]interface{}{"type": "string", "enum": []interface{}{"approved", "rejected"}},
			},
			"required": []interface{}{"action"},
		},
		Actions: map[string]ActionBinding{
			"list":            ontologyList,
			"info":            ontologyInfo,
			"files":           ontologyFiles,
			"create":          ontologyCreate,
			"rename":          ontologyRename,
			"delete":          ontologyDelete,
			"lifecycle":       ontologyLifecycle,
			"scores":          ontologyScores,
			"score":           ontologyScore,
			"score_all":       ontologyScoreAll,
			"candidates":      ontologyCandidates,
			"affinity":        ontologyAffinity,
			"edges":           ontologyEdges,
			"reassign":        ontologyReassign,
			"dissolve":        ontologyDissolve,
			"proposals":       ontologyProposals,
			"proposal_review": ontologyProposalReview,
			"annealing_cycle": ontologyAnnealingCycle,
		},
	})
}

func requireName(args map[string]interface{}) (string, error) {
	name, ok := getString(args, "name")
	if !ok {
		return "", newError("ontology action requires name")
	}
	return name, nil
}

func ontologyList(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	r, err := deps.Backend.ListOntologies(ctx)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.OntologyList(r)}, nil
}

func ontologyInfo(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	r, err := deps.Backend.GetOntologyInfo(ctx, name)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Ontology(r)}, nil
}

func ontologyFiles(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	r, err := deps.Backend.ListOntologyFiles(ctx, name)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.OntologyFiles(r)}, nil
}

func ontologyCreate(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	description := stringOr(args, "description", "")
	r, err := deps.Backend.CreateOntology(ctx, name, description)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Ontology(r)}, nil
}

func ontologyRename(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	newName, ok := getString(args, "new_name")
	if !ok {
		return Response{}, newError("ontology.rename requires new_name")
	}
	r, err := deps.Backend.RenameOntology(ctx, name, newName)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Ontology(r)}, nil
}

func ontologyDelete(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	if err := deps.Backend.DeleteOntology(ctx, name); err != nil {
		return Response{}, err
	}
	return Response{Text: "Ontology " + name + " deleted."}, nil
}

func ontologyLifecycle(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	action := stringOr(args, "lifecycle_state", "")
	r, err := deps.Backend.OntologyLifecycle(ctx, name, action)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Ontology(r)}, nil
}

func ontologyScores(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	r, err := deps.Backend.OntologyScores(ctx, name)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.ScoreResult(r)}, nil
}

func ontologyScore(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	conceptID, ok := getString(args, "concept_id")
	if !ok {
		return Response{}, newError("ontology.score requires concept_id")
	}
	entry, err := deps.Backend.OntologyScore(ctx, name, conceptID)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.ScoreResult(&backend.ScoreResult{Entries: []backend.ScoreEntry{*entry}})}, nil
}

func ontologyScoreAll(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	r, err := deps.Backend.OntologyScoreAll(ctx, name)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.ScoreResult(r)}, nil
}

func ontologyCandidates(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	params := mapOfNonCoreParams(args, "action", "name")
	r, err := deps.Backend.OntologyCandidates(ctx, name, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.ScoreResult(r)}, nil
}

func ontologyAffinity(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	conceptID, ok := getString(args, "concept_id")
	if !ok {
		return Response{}, newError("ontology.affinity requires concept_id")
	}
	r, err := deps.Backend.OntologyAffinity(ctx, name, conceptID)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.ScoreResult(r)}, nil
}

func ontologyEdges(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	r, err := deps.Backend.OntologyEdges(ctx, name)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.ScoreResult(r)}, nil
}

func ontologyReassign(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	conceptID, ok := getString(args, "concept_id")
	if !ok {
		return Response{}, newError("ontology.reassign requires concept_id")
	}
	target, ok := getString(args, "target_ontology")
	if !ok {
		return Response{}, newError("ontology.reassign requires target_ontology")
	}
	if err := deps.Backend.OntologyReassign(ctx, name, conceptID, target); err != nil {
		return Response{}, err
	}
	return Response{Text: "Concept " + conceptID + " reassigned to " + target + "."}, nil
}

func ontologyDissolve(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	if err := deps.Backend.OntologyDissolve(ctx, name); err != nil {
		return Response{}, err
	}
	return Response{Text: "Ontology " + name + " dissolved."}, nil
}

func ontologyProposals(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	r, err := deps.Backend.OntologyProposals(ctx, name)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.AnnealingProposals(r)}, nil
}

func ontologyProposalReview(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	proposalID, ok := getString(args, "proposal_id")
	if !ok {
		return Response{}, newError("ontology.proposal_review requires proposal_id")
	}
	status, ok := getString(args, "status")
	if !ok || (status != "approved" && status != "rejected") {
		return Response{}, newError("ontology.proposal_review requires status in {approved, rejected}")
	}
	if err := deps.Backend.ReviewProposal(ctx, proposalID, status); err != nil {
		return Response{}, err
	}
	return Response{Text: "Proposal " + proposalID + " " + status + "."}, nil
}

func ontologyAnnealingCycle(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	name, err := requireName(args)
	if err != nil {
		return Response{}, err
	}
	r, err := deps.Backend.TriggerAnnealingCycle(ctx, name)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.AnnealingProposals(r)}, nil
}
