package llmprovider

import (
	"context"
	"fmt"

	"text-to-calendar/pkg/deepseek"
	"text-to-calendar/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, toGeminiRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	out := &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = fromGeminiUsage(resp.Usage)
	}
	return out, nil
}

// StreamContent implements Provider interface
func (a *GeminiAdapter) StreamContent(ctx context.Context, req *Request, onText func(delta string) error) (*Usage, error) {
	usage, err := a.client.StreamContent(ctx, toGeminiRequest(req), onText)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if usage == nil {
		return &Usage{}, nil
	}
	return fromGeminiUsage(usage), nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiRequest(req *Request) *gemini.Request {
	out := &gemini.Request{
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	}
	if req.System != "" {
		out.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.System}}}
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "assistant" {
			role = "model"
		}
		out.Messages = append(out.Messages, gemini.Content{Role: role, Parts: []gemini.Part{{Text: m.Text}}})
	}
	return out
}

func fromGeminiUsage(u *gemini.Usage) *Usage {
	return &Usage{
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
		TotalTokens:  u.TotalTokens,
	}
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface.
// It also serves every other OpenAI-compatible backend (qwen, openai) under its own name.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
	name   string
}

// NewDeepSeekAdapter creates a new adapter reporting itself as name
func NewDeepSeekAdapter(client deepseek.IDeepSeek, name string) *DeepSeekAdapter {
	if name == "" {
		name = "deepseek"
	}
	return &DeepSeekAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, toDeepSeekRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	out := &Response{
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage:        fromDeepSeekUsage(resp.Usage),
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

// StreamContent implements Provider interface
func (a *DeepSeekAdapter) StreamContent(ctx context.Context, req *Request, onText func(delta string) error) (*Usage, error) {
	usage, err := a.client.StreamContent(ctx, toDeepSeekRequest(req), onText)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}
	return fromDeepSeekUsage(*usage), nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func toDeepSeekRequest(req *Request) *deepseek.Request {
	out := &deepseek.Request{
		Messages:    make([]deepseek.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// System instruction goes first
	if req.System != "" {
		out.Messages = append(out.Messages, deepseek.Message{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, deepseek.Message{Role: m.Role, Content: m.Text})
	}
	if req.JSONMode {
		out.ResponseFormat = &deepseek.ResponseFormat{Type: "json_object"}
	}
	return out
}

func fromDeepSeekUsage(u deepseek.Usage) *Usage {
	return &Usage{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
}
