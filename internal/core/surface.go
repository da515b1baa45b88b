package core

// Surface is the capability the dispatcher needs from whatever renders the
// conversation. The terminal UI implements it with a per-submit snapshot;
// tests use an in-memory fake. Undefined input and an absent attachment are
// empty strings, never an error.
type Surface interface {
	DisplayAppend(text string)
	DisplayReplace(text string)
	CurrentInput() string
	SelectedMode() Mode
	AttachedFilePath() string
}
