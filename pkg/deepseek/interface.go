package deepseek

import "context"

// IDeepSeek defines the interface for DeepSeek (and other OpenAI-compatible) chat clients
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	StreamContent(ctx context.Context, req *Request, onText func(delta string) error) (*Usage, error)
	Model() string
}
