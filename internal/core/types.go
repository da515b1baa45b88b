package core

const (
	FoxName    = "FoxChat"
	FoxVersion = "0.3.0"

	// TimeFormat is the store-assigned timestamp layout, second precision.
	TimeFormat = "2006-01-02 15:04:05"
)

// HistoryEntry is one persisted question/answer exchange.
type HistoryEntry struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}

// Fact is a durable key/value statement about the user. Facts are injected
// into the system instruction of every new conversation.
type Fact struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Mode selects which handler a submitted input is routed to.
type Mode string

const (
	ModeChat      Mode = "chat"
	ModeSearch    Mode = "search"
	ModeSummarize Mode = "summarize"
	ModeCode      Mode = "code"
	ModeWebSearch Mode = "websearch"
	ModeFacts     Mode = "facts"
	ModeData      Mode = "data"
	ModeImage     Mode = "image"
	ModeAgent     Mode = "agent"
)

// Modes lists every mode in selector order.
var Modes = []Mode{
	ModeChat,
	ModeSearch,
	ModeSummarize,
	ModeCode,
	ModeWebSearch,
	ModeFacts,
	ModeData,
	ModeImage,
	ModeAgent,
}

// Attachment is a file payload forwarded to the model as-is.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// GenerateRequest describes a one-shot generation call: no retained
// server-side state, optional system instruction, attachment and the
// web-search tool flag.
type GenerateRequest struct {
	Prompt      string
	Instruction string
	WebSearch   bool
	Attachment  *Attachment
}
