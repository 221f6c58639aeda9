package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// StreamContent streams a generation, calling onText with every text delta
	StreamContent(ctx context.Context, req *Request, onText func(delta string) error) (*Usage, error)

	// Name returns the provider name (e.g., "deepseek", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// Message represents a conversation message
type Message struct {
	Role string // "user", "assistant"
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// EventType tags a streamed answer event.
type EventType string

const (
	// EventAnswer carries the cumulative answer text so far.
	EventAnswer EventType = "answer"
	// EventDone is terminal; Text holds the final answer.
	EventDone EventType = "done"
	// EventError is terminal; Err holds the cause.
	EventError EventType = "error"
)

// Event is emitted by Manager.GenerateAnswer.
type Event struct {
	Type     EventType
	Text     string
	Provider string
	Err      error
}

// UserPrompt builds a single-turn request.
func UserPrompt(prompt string) *Request {
	return &Request{
		Messages: []Message{{Role: "user", Text: prompt}},
	}
}
