package session

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/sandfox-dev/foxchat/internal/core"
	"github.com/sandfox-dev/foxchat/internal/service/memory"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

// Manager owns the single live conversation session. Any fact mutation
// invalidates the session: Rebuild must run before the next turn, otherwise
// the model keeps the old context instruction.
type Manager struct {
	provider core.ChatProvider
	builder  *memory.ContextBuilder

	mu          sync.Mutex
	chat        core.ChatSession
	instruction string
}

func NewManager(provider core.ChatProvider, builder *memory.ContextBuilder) *Manager {
	return &Manager{
		provider: provider,
		builder:  builder,
	}
}

// Open builds the context instruction from the current fact snapshot and
// opens a fresh session with it. A missing provider leaves the manager in
// degraded mode: conversational turns report an error, nothing crashes.
func (m *Manager) Open(ctx context.Context) error {
	instruction, err := m.builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("build context instruction: %w", err)
	}

	if m.provider == nil {
		return core.ErrAPIInit
	}

	chat, err := m.provider.OpenChat(ctx, instruction)
	if err != nil {
		return fmt.Errorf("open chat: %w", err)
	}

	m.mu.Lock()
	old := m.chat
	m.chat = chat
	m.instruction = instruction
	m.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("failed to close previous session")
		}
	}

	log.FromCtx(ctx).Info().Int("instruction_tokens", m.TokenEstimate()).Msg("session opened")
	return nil
}

// Rebuild discards the current session and reopens with a fresh fact
// snapshot. Turns sent before Rebuild never see post-mutation facts.
func (m *Manager) Rebuild(ctx context.Context) error {
	return m.Open(ctx)
}

// Send forwards one turn on the open session.
func (m *Manager) Send(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	chat := m.chat
	m.mu.Unlock()

	if chat == nil {
		return "", core.ErrNoSession
	}
	return chat.Send(ctx, text)
}

func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chat != nil
}

// Instruction returns the context text the live session was opened with.
func (m *Manager) Instruction() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.instruction
}

// TokenEstimate approximates the instruction size in tokens for the status
// line. The BPE vocabulary is not Gemini's, so treat it as a gauge only.
func (m *Manager) TokenEstimate() int {
	instruction := m.Instruction()
	if instruction == "" {
		return 0
	}

	if enc := getTokenizer(); enc != nil {
		return len(enc.Encode(instruction, nil, nil))
	}
	// Rough fallback when the encoding cannot be loaded
	return utf8.RuneCountInString(instruction) / 4
}

func (m *Manager) Close() error {
	m.mu.Lock()
	chat := m.chat
	m.chat = nil
	m.mu.Unlock()

	if chat == nil {
		return nil
	}
	return chat.Close()
}

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		tk = enc
	})
	return tk
}
