// Package policy evaluates inbound user messages against the care policy.
package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/open-policy-agent/opa/rego"
)

// Decisions returned by the care policy.
const (
	DecisionOK              = "ok"
	DecisionAttachResources = "attach_resources"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.care_policy.decision"),
		rego.Module("care_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate decides how to treat a user message. Input carries the message
// text and user id. Policy faults degrade to DecisionOK: a broken policy
// must never block a reply.
func (e *Engine) Evaluate(ctx context.Context, text, userID string) string {
	input := map[string]interface{}{
		"text":    strings.ToLower(text),
		"user_id": userID,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil || len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionOK
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s
	}
	return DecisionOK
}

// DefaultPolicy attaches crisis resources when a message carries
// crisis-adjacent wording. The decision augments the assistant reply; it
// never suppresses one.
const DefaultPolicy = `
package care_policy

import rego.v1

default decision := "ok"

crisis_terms := [
	"suicide",
	"kill myself",
	"end my life",
	"self-harm",
	"hurt myself",
	"no reason to live",
]

decision := "attach_resources" if {
	some term in crisis_terms
	contains(input.text, term)
}
`
