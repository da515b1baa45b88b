package core

import "context"

// ChatSession is an owned handle to a stateful multi-turn conversation.
// The vendor type never leaks past this boundary.
type ChatSession interface {
	Send(ctx context.Context, text string) (string, error)
	Close() error
}

// ChatProvider opens multi-turn sessions seeded with a system instruction.
type ChatProvider interface {
	OpenChat(ctx context.Context, instruction string) (ChatSession, error)
}

// Generator performs stateless one-shot generation calls.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
