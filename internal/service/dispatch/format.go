package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandfox-dev/foxchat/internal/core"
)

const answerPrefix = "[fox]: "

const (
	questionPreview = 100
	answerPreview   = 200
)

func formatSearchResults(keyword string, entries []core.HistoryEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No history entries match %q.", keyword)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d record(s) for %q:\n", len(entries), keyword)
	for _, e := range entries {
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("=", 50))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Date: %s\n", e.CreatedAt)
		fmt.Fprintf(&sb, "Q: %s\n", truncate(e.Question, questionPreview))
		fmt.Fprintf(&sb, "A: %s", truncate(e.Answer, answerPreview))
	}
	return sb.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// errorMessage converts a handler failure into the line shown to the user.
// Nothing here terminates the process.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrNoSession), errors.Is(err, core.ErrAPIInit):
		return "[Error]: the AI service is not available. Set GEMINI_API_KEY and restart the session."
	case errors.Is(err, core.ErrAPICall):
		return fmt.Sprintf("[Error]: the API call failed (%v).", err)
	case errors.Is(err, core.ErrMissingAttachment):
		return "[Error]: attach a file first (use /attach <path>)."
	case errors.Is(err, core.ErrInvalidCommand):
		return fmt.Sprintf("[Error]: %v", err)
	case errors.Is(err, core.ErrStorageRead), errors.Is(err, core.ErrStorageWrite):
		return fmt.Sprintf("[Error]: local storage failed (%v).", err)
	default:
		return fmt.Sprintf("[Error]: %v", err)
	}
}
