package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandfox-dev/foxchat/internal/core"
	"github.com/sandfox-dev/foxchat/internal/service/session"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

// undoKeywords short-circuit any mode to deleting the most recent history
// entry. Matched against the whole trimmed input, never as a substring: a
// question that merely mentions one of these words must not delete anything.
var undoKeywords = []string{"undo", "delete last", "취소", "되돌리기", "마지막 삭제"}

// Dispatcher maps (selected mode, input text) to one handler invocation.
// It is stateless between submits; every error is rendered to the surface
// and swallowed.
type Dispatcher struct {
	history core.HistoryRepository
	facts   core.FactRepository
	session *session.Manager
	gen     core.Generator
}

func New(
	history core.HistoryRepository,
	facts core.FactRepository,
	sess *session.Manager,
	gen core.Generator,
) *Dispatcher {
	return &Dispatcher{
		history: history,
		facts:   facts,
		session: sess,
		gen:     gen,
	}
}

// Dispatch handles one user action against the surface snapshot.
func (d *Dispatcher) Dispatch(ctx context.Context, s core.Surface) {
	input := strings.TrimSpace(s.CurrentInput())

	if isUndoCommand(input) {
		d.handleUndo(ctx, s)
		return
	}

	switch s.SelectedMode() {
	case core.ModeChat:
		d.handleChat(ctx, s, input)
	case core.ModeSearch:
		d.handleSearch(ctx, s, input)
	case core.ModeSummarize:
		d.handleOneShot(ctx, s, input, core.GenerateRequest{
			Prompt:      input,
			Instruction: summarizeInstruction,
		})
	case core.ModeCode:
		d.handleOneShot(ctx, s, input, core.GenerateRequest{
			Prompt:      input,
			Instruction: codeInstruction,
		})
	case core.ModeWebSearch:
		d.handleOneShot(ctx, s, input, core.GenerateRequest{
			Prompt:      input,
			Instruction: webSearchInstruction,
			WebSearch:   true,
		})
	case core.ModeFacts:
		d.handleFacts(ctx, s, input)
	case core.ModeData:
		d.handleData(ctx, s, input)
	case core.ModeImage:
		d.handleImage(ctx, s, input)
	case core.ModeAgent:
		d.handleOneShot(ctx, s, input, core.GenerateRequest{
			Prompt:      input,
			Instruction: agentInstruction,
			WebSearch:   true,
		})
	default:
		s.DisplayAppend("Pick a mode first.")
	}
}

func isUndoCommand(input string) bool {
	lowered := strings.ToLower(input)
	for _, kw := range undoKeywords {
		if lowered == kw {
			return true
		}
	}
	return false
}

func (d *Dispatcher) handleUndo(ctx context.Context, s core.Surface) {
	id, ok, err := d.history.DeleteMostRecent(ctx)
	if err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}
	if !ok {
		s.DisplayAppend("Nothing to undo; the history is empty.")
		return
	}
	s.DisplayAppend(fmt.Sprintf("Removed the most recent exchange (#%d).", id))
}

func (d *Dispatcher) handleChat(ctx context.Context, s core.Surface, input string) {
	if input == "" {
		return
	}

	answer, err := d.session.Send(ctx, input)
	if err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}

	s.DisplayAppend(answerPrefix + answer)
	d.persist(ctx, s, input, answer)
}

func (d *Dispatcher) handleSearch(ctx context.Context, s core.Surface, input string) {
	if input == "" {
		s.DisplayAppend("Enter a keyword to search the conversation history.")
		return
	}

	entries, err := d.history.Search(ctx, input)
	if err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}

	// Search takes over the whole view, like a results page
	s.DisplayReplace(formatSearchResults(input, entries))
}

func (d *Dispatcher) handleOneShot(ctx context.Context, s core.Surface, input string, req core.GenerateRequest) {
	if input == "" {
		s.DisplayAppend("Enter some text first.")
		return
	}
	d.generate(ctx, s, input, req)
}

func (d *Dispatcher) handleData(ctx context.Context, s core.Surface, input string) {
	if input == "" {
		s.DisplayAppend("Enter a question about the attached data file.")
		return
	}

	path := s.AttachedFilePath()
	att, err := loadAttachment(path, dataMIME(path))
	if err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}

	d.generate(ctx, s, input, core.GenerateRequest{
		Prompt:      input,
		Instruction: dataInstruction,
		Attachment:  att,
	})
}

func (d *Dispatcher) handleImage(ctx context.Context, s core.Surface, input string) {
	path := s.AttachedFilePath()
	att, err := loadAttachment(path, imageMIME(path))
	if err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}

	prompt := input
	if prompt == "" {
		prompt = defaultImagePrompt
	}

	d.generate(ctx, s, prompt, core.GenerateRequest{
		Prompt:      prompt,
		Instruction: imageInstruction,
		Attachment:  att,
	})
}

func (d *Dispatcher) generate(ctx context.Context, s core.Surface, question string, req core.GenerateRequest) {
	if d.gen == nil {
		s.DisplayAppend(errorMessage(core.ErrAPIInit))
		return
	}

	answer, err := d.gen.Generate(ctx, req)
	if err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}

	s.DisplayAppend(answerPrefix + answer)
	d.persist(ctx, s, question, answer)
}

// persist saves the exchange best-effort: the answer was already produced,
// so a storage failure is reported but never hides it.
func (d *Dispatcher) persist(ctx context.Context, s core.Surface, question, answer string) {
	if _, err := d.history.Append(ctx, question, answer); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to persist exchange")
		s.DisplayAppend("(warning: this exchange could not be saved to history)")
	}
}
