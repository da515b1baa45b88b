package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sandfox-dev/foxchat/internal/config"
	"github.com/sandfox-dev/foxchat/internal/core"
	"github.com/sandfox-dev/foxchat/pkg/log"
	"github.com/sandfox-dev/foxchat/pkg/retry"
)

const sessionAck = "Understood. I'll keep that in mind for our conversation."

// Client wraps the Gemini SDK behind the core.ChatProvider and
// core.Generator seams. The genai types never escape this package.
type Client struct {
	genai   *genai.Client
	model   string
	retrier *retry.Retrier
}

// NewClient constructs the API client. A missing credential yields
// core.ErrAPIInit; callers treat that as degraded mode, not a crash.
func NewClient(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", core.ErrAPIInit)
	}

	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrAPIInit, err)
	}

	log.FromCtx(ctx).Info().Str("model", cfg.Model).Msg("gemini client ready")
	return &Client{
		genai:   gc,
		model:   cfg.Model,
		retrier: retry.NewDefaultRetrier(),
	}, nil
}

func (c *Client) Close() error {
	return c.genai.Close()
}

// OpenChat starts a multi-turn session seeded with the context instruction
// as a synthetic user turn plus a synthetic model acknowledgement.
func (c *Client) OpenChat(ctx context.Context, instruction string) (core.ChatSession, error) {
	model := c.genai.GenerativeModel(c.model)
	cs := model.StartChat()
	cs.History = []*genai.Content{
		{
			Role:  "user",
			Parts: []genai.Part{genai.Text(instruction)},
		},
		{
			Role:  "model",
			Parts: []genai.Part{genai.Text(sessionAck)},
		},
	}
	return &chatSession{cs: cs}, nil
}

// Generate performs a stateless one-shot call. Transient failures are
// retried with bounded backoff; chat turns are not (the session is stateful
// and must not see a turn twice).
func (c *Client) Generate(ctx context.Context, req core.GenerateRequest) (string, error) {
	model := c.genai.GenerativeModel(c.model)

	if req.Instruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.Instruction)},
		}
	}
	if req.WebSearch {
		model.Tools = []*genai.Tool{
			{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}},
		}
	}

	parts := []genai.Part{genai.Text(req.Prompt)}
	if req.Attachment != nil {
		parts = append(parts, genai.Blob{
			MIMEType: req.Attachment.MIMEType,
			Data:     req.Attachment.Data,
		})
	}

	var resp *genai.GenerateContentResponse
	err := c.retrier.Do(ctx, func() error {
		var callErr error
		resp, callErr = model.GenerateContent(ctx, parts...)
		return callErr
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrAPICall, err)
	}

	return responseText(resp)
}

type chatSession struct {
	cs *genai.ChatSession
}

func (s *chatSession) Send(ctx context.Context, text string) (string, error) {
	resp, err := s.cs.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrAPICall, err)
	}
	return responseText(resp)
}

func (s *chatSession) Close() error {
	// The SDK session holds no remote resources; dropping the handle is
	// enough.
	s.cs = nil
	return nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", core.ErrAPICall)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("%w: no text parts in response", core.ErrAPICall)
	}
	return out, nil
}
