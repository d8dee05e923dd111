package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateOrdinaryMessage(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, DefaultPolicy)
	require.NoError(t, err)

	decision := engine.Evaluate(ctx, "I had a pretty good day, went for a run", "u1")
	assert.Equal(t, DecisionOK, decision)
}

func TestEvaluateCrisisMessage(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, DefaultPolicy)
	require.NoError(t, err)

	cases := []string{
		"sometimes I think about suicide",
		"I want to end my life",
		"I might hurt myself tonight",
		"There is NO REASON TO LIVE anymore",
	}
	for _, text := range cases {
		assert.Equal(t, DecisionAttachResources, engine.Evaluate(ctx, text, "u1"), "text: %s", text)
	}
}

func TestNewEngineRejectsBrokenPolicy(t *testing.T) {
	_, err := NewEngine(context.Background(), "package broken\nthis is not rego")
	assert.Error(t, err)
}
