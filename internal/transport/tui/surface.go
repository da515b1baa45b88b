package tui

import (
	"github.com/sandfox-dev/foxchat/internal/core"
)

// snapshot freezes one submit (input, mode, attachment) so the dispatcher
// can run on a background goroutine while the model keeps handling events.
// Display calls are buffered and folded back into the transcript when the
// result message arrives.
type snapshot struct {
	input      string
	mode       core.Mode
	attachment string

	appended []string
	replaced string
	replace  bool
}

var _ core.Surface = (*snapshot)(nil)

func (s *snapshot) DisplayAppend(text string) {
	s.appended = append(s.appended, text)
}

func (s *snapshot) DisplayReplace(text string) {
	s.replaced = text
	s.replace = true
}

func (s *snapshot) CurrentInput() string     { return s.input }
func (s *snapshot) SelectedMode() core.Mode  { return s.mode }
func (s *snapshot) AttachedFilePath() string { return s.attachment }
