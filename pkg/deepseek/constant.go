package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// QwenBaseURL is Alibaba DashScope's OpenAI-compatible endpoint
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// OpenAIBaseURL is the OpenAI chat completions endpoint
	OpenAIBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds a single HTTP call
	DefaultTimeout = 60 * time.Second
)
