package dispatch

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandfox-dev/foxchat/internal/core"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

const factsHelp = `Fact commands:
  view            show all stored facts (default)
  add key=value   store or replace a fact
  delete key      remove a fact
  reset           rebuild the session with the current facts

Korean aliases: 보기 / 추가 / 삭제 / 초기화`

// commandAliases maps localized command words onto the canonical four.
var commandAliases = map[string]string{
	"view":   "view",
	"add":    "add",
	"delete": "delete",
	"reset":  "reset",
	"보기":     "view",
	"추가":     "add",
	"삭제":     "delete",
	"초기화":    "reset",
}

// handleFacts sub-dispatches on the leading command word. Successful
// mutations invalidate the live session, so they trigger a rebuild.
func (d *Dispatcher) handleFacts(ctx context.Context, s core.Surface, input string) {
	fields := strings.Fields(input)

	cmd := "view"
	rest := ""
	if len(fields) > 0 {
		if canonical, ok := commandAliases[strings.ToLower(fields[0])]; ok {
			cmd = canonical
			rest = strings.TrimSpace(strings.TrimPrefix(input, fields[0]))
		} else {
			s.DisplayAppend(fmt.Sprintf("Unknown fact command %q.\n\n%s", fields[0], factsHelp))
			return
		}
	}

	switch cmd {
	case "view":
		d.factsView(ctx, s)
	case "add":
		d.factsAdd(ctx, s, rest)
	case "delete":
		d.factsDelete(ctx, s, rest)
	case "reset":
		d.rebuildSession(ctx, s)
		s.DisplayAppend("Session rebuilt from the current facts.")
	}
}

func (d *Dispatcher) factsView(ctx context.Context, s core.Surface) {
	facts, err := d.facts.All(ctx)
	if err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}
	if len(facts) == 0 {
		s.DisplayAppend("No facts stored yet. Use: add key=value")
		return
	}

	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Stored facts (%d):\n", len(facts))
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %s: %s\n", k, facts[k])
	}
	s.DisplayAppend(strings.TrimRight(sb.String(), "\n"))
}

func (d *Dispatcher) factsAdd(ctx context.Context, s core.Surface, rest string) {
	key, value, found := strings.Cut(rest, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if !found || key == "" {
		s.DisplayAppend(errorMessage(fmt.Errorf(
			"%w: expected add key=value", core.ErrInvalidCommand)))
		return
	}

	if err := d.facts.Upsert(ctx, key, value); err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}

	s.DisplayAppend(fmt.Sprintf("Remembered %s: %s", key, value))
	d.rebuildSession(ctx, s)
}

func (d *Dispatcher) factsDelete(ctx context.Context, s core.Surface, rest string) {
	key := strings.TrimSpace(rest)
	if key == "" {
		s.DisplayAppend(errorMessage(fmt.Errorf(
			"%w: expected delete key", core.ErrInvalidCommand)))
		return
	}

	removed, err := d.facts.Delete(ctx, key)
	if err != nil {
		s.DisplayAppend(errorMessage(err))
		return
	}
	if !removed {
		s.DisplayAppend(fmt.Sprintf("No fact stored under %q.", key))
		return
	}

	s.DisplayAppend(fmt.Sprintf("Forgot %q.", key))
	d.rebuildSession(ctx, s)
}

// rebuildSession refreshes the live session so the next turn sees the
// mutation. A failed rebuild leaves the mutation in place; the user is told
// the session is stale.
func (d *Dispatcher) rebuildSession(ctx context.Context, s core.Surface) {
	if err := d.session.Rebuild(ctx); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("session rebuild failed")
		s.DisplayAppend("(warning: the chat session could not be rebuilt; it will not see this change)")
	}
}
