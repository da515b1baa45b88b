package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandfox-dev/foxchat/internal/core"
)

func TestFacts_ViewEmpty(t *testing.T) {
	f := newFixture(t)
	s := &fakeSurface{input: "", mode: core.ModeFacts}

	f.dispatcher.Dispatch(context.Background(), s)

	assert.Contains(t, s.all(), "No facts stored yet")
}

func TestFacts_AddThenView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := &fakeSurface{input: "add hobby=reading", mode: core.ModeFacts}
	f.dispatcher.Dispatch(ctx, s)

	assert.Equal(t, "reading", f.facts.facts["hobby"])
	assert.Contains(t, s.all(), "Remembered hobby: reading")

	s = &fakeSurface{input: "view", mode: core.ModeFacts}
	f.dispatcher.Dispatch(ctx, s)

	assert.Contains(t, s.all(), "hobby: reading")
}

func TestFacts_AddRebuildsSession(t *testing.T) {
	f := newFixture(t)
	opensBefore := f.provider.opens

	s := &fakeSurface{input: "add name=Kim", mode: core.ModeFacts}
	f.dispatcher.Dispatch(context.Background(), s)

	assert.Equal(t, opensBefore+1, f.provider.opens)
	assert.Contains(t, f.dispatcher.session.Instruction(), "name: Kim")
}

func TestFacts_AddWithoutEquals(t *testing.T) {
	f := newFixture(t)

	s := &fakeSurface{input: "추가 hobby", mode: core.ModeFacts}
	f.dispatcher.Dispatch(context.Background(), s)

	assert.Contains(t, s.all(), "expected add key=value")
	assert.Empty(t, f.facts.facts, "a malformed add must not store anything")
}

func TestFacts_KoreanAliases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := &fakeSurface{input: "추가 취미=독서", mode: core.ModeFacts}
	f.dispatcher.Dispatch(ctx, s)
	require.Equal(t, "독서", f.facts.facts["취미"])

	s = &fakeSurface{input: "삭제 취미", mode: core.ModeFacts}
	f.dispatcher.Dispatch(ctx, s)
	assert.Empty(t, f.facts.facts)
}

func TestFacts_DeleteMissing(t *testing.T) {
	f := newFixture(t)
	opensBefore := f.provider.opens

	s := &fakeSurface{input: "delete nope", mode: core.ModeFacts}
	f.dispatcher.Dispatch(context.Background(), s)

	assert.Contains(t, s.all(), "No fact stored")
	assert.Equal(t, opensBefore, f.provider.opens, "no mutation, no rebuild")
}

func TestFacts_Reset(t *testing.T) {
	f := newFixture(t)
	opensBefore := f.provider.opens

	s := &fakeSurface{input: "reset", mode: core.ModeFacts}
	f.dispatcher.Dispatch(context.Background(), s)

	assert.Equal(t, opensBefore+1, f.provider.opens)
	assert.Contains(t, s.all(), "Session rebuilt")
}

func TestFacts_UnknownCommandShowsHelp(t *testing.T) {
	f := newFixture(t)

	s := &fakeSurface{input: "frobnicate", mode: core.ModeFacts}
	f.dispatcher.Dispatch(context.Background(), s)

	assert.Contains(t, s.all(), "Fact commands:")
}
