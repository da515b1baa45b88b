package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandfox-dev/foxchat/internal/core"
)

const genericInstruction = "You are a friendly, general-purpose conversational AI assistant. " +
	"Answer clearly and keep a light, good-humored tone."

const factsPreamble = "You are a friendly and slightly humorous AI assistant. " +
	"Remember the following facts about the user and weave them naturally into the conversation when relevant:\n"

const factsEpilogue = "\nDo not recite this list back unless asked; just use it."

// ContextBuilder renders the current fact snapshot into the system
// instruction used to seed new sessions.
type ContextBuilder struct {
	facts core.FactRepository
}

func NewContextBuilder(facts core.FactRepository) *ContextBuilder {
	return &ContextBuilder{facts: facts}
}

// Build returns the context instruction for a new session. An empty store
// yields the generic assistant instruction.
func (b *ContextBuilder) Build(ctx context.Context) (string, error) {
	facts, err := b.facts.All(ctx)
	if err != nil {
		return "", fmt.Errorf("load facts: %w", err)
	}

	if len(facts) == 0 {
		return genericInstruction, nil
	}

	// Stable order so rebuilding without changes yields the same text
	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(factsPreamble)
	for _, k := range keys {
		sb.WriteString("- ")
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(facts[k])
		sb.WriteString("\n")
	}
	sb.WriteString(factsEpilogue)

	return sb.String(), nil
}
