package models

// OutputMode selects the screening report contract. It is a deployment-level
// switch: it decides the prompt variant, how the model reply is parsed, and
// how responses are serialized.
type OutputMode string

const (
	// ModeMarkdown returns the model's report as opaque Markdown.
	ModeMarkdown OutputMode = "markdown"
	// ModeStructured requires the model to answer with a fixed JSON schema.
	ModeStructured OutputMode = "structured"
)

// ScreenRequest is the JSON body accepted by POST /screen. The job
// description can arrive nested under a chat-style message envelope or as a
// top-level field; the nested form takes precedence when both are present.
type ScreenRequest struct {
	Message *ChatMessage `json:"message,omitempty"`
	JD      string       `json:"jd,omitempty"`
}

// JobDescription extracts the JD from whichever field carries it.
func (r *ScreenRequest) JobDescription() string {
	if r.Message != nil && r.Message.Text != "" {
		return r.Message.Text
	}
	return r.JD
}

type ChatMessage struct {
	Text string `json:"text"`
}

// ChatEvent is the envelope accepted by the chat-bot surface.
type ChatEvent struct {
	Message *ChatMessage `json:"message,omitempty"`
}

// AnalysisBullet is one remediation suggestion in a structured report.
type AnalysisBullet struct {
	Section string `json:"section"`
	Text    string `json:"text"`
}

// StructuredAnalysis is the strict-schema report produced in structured mode.
type StructuredAnalysis struct {
	TopMatchName string           `json:"top_match_name"`
	Analysis     string           `json:"analysis"`
	Reasoning    string           `json:"reasoning"`
	Bullets      []AnalysisBullet `json:"bullets"`
}

// ScreenResult bundles the model's report with the candidate pool it was
// produced from. The pool is kept so the formatter can resolve the winning
// candidate's external path.
type ScreenResult struct {
	Mode       OutputMode
	Markdown   string
	Structured *StructuredAnalysis
	Candidates []CandidateRecord
}

// MarkdownResponse is the JSON success envelope in markdown mode.
type MarkdownResponse struct {
	Markdown string `json:"markdown"`
}

// StructuredResponse is the JSON success envelope in structured mode, with
// the winner's path resolved from the candidate pool.
type StructuredResponse struct {
	TopMatchName string           `json:"top_match_name"`
	Path         string           `json:"path"`
	Analysis     string           `json:"analysis"`
	Reasoning    string           `json:"reasoning"`
	Bullets      []AnalysisBullet `json:"bullets"`
}

// ChatWidget is one ordered text block inside a chat card.
type ChatWidget struct {
	Text string `json:"text"`
}

// ChatCard is the structured chat-bot success payload.
type ChatCard struct {
	Title   string       `json:"title"`
	Widgets []ChatWidget `json:"widgets"`
}

// ChatText is the plain chat-bot payload used for greetings, markdown-mode
// replies and failures.
type ChatText struct {
	Text string `json:"text"`
}
