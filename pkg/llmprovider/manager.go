package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"text-to-calendar/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the configured providers in priority order
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var lastErr error

	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp.Usage)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// GenerateAnswer streams the answer to prompt. onEvent receives EventAnswer
// with the cumulative text, then exactly one EventDone or EventError.
// Cancelling ctx aborts the request. A provider is only retried, or replaced
// by the next one, while nothing has been emitted yet.
func (m *Manager) GenerateAnswer(ctx context.Context, prompt string, onEvent func(Event)) error {
	req := UserPrompt(prompt)
	req.JSONMode = true
	return m.StreamAnswer(ctx, req, onEvent)
}

// StreamAnswer is GenerateAnswer for a prepared request.
func (m *Manager) StreamAnswer(ctx context.Context, req *Request, onEvent func(Event)) error {
	fail := func(provider string, err error) error {
		onEvent(Event{Type: EventError, Provider: provider, Err: err})
		return err
	}

	if len(m.providers) == 0 {
		return fail("", ErrNoProvidersConfigured)
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var lastErr error

	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return fail(provider.Name(), err)
		}

		text, usage, emitted, err := m.streamWithRetry(ctx, provider, req, onEvent)
		if err == nil {
			m.logSuccess(ctx, provider, usage)
			onEvent(Event{Type: EventDone, Provider: provider.Name(), Text: text})
			return nil
		}

		m.logFailure(ctx, provider, err)
		if emitted {
			return fail(provider.Name(), fmt.Errorf("%w: %w", ErrAnswerInterrupted, err))
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fail(provider.Name(), ctxErr)
		}
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return fail("", fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr))
}

// generateWithRetry implements retry mechanism with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if err := m.backoff(ctx, attempt); err != nil {
			return nil, err
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

// streamWithRetry retries a provider until it streams successfully or has
// emitted part of an answer.
func (m *Manager) streamWithRetry(ctx context.Context, provider Provider, req *Request, onEvent func(Event)) (string, *Usage, bool, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if err := m.backoff(ctx, attempt); err != nil {
			return "", nil, false, err
		}

		var answer strings.Builder
		emitted := false
		usage, err := provider.StreamContent(ctx, req, func(delta string) error {
			answer.WriteString(delta)
			emitted = true
			onEvent(Event{Type: EventAnswer, Provider: provider.Name(), Text: answer.String()})
			return ctx.Err()
		})
		if err == nil {
			return answer.String(), usage, emitted, nil
		}
		if emitted || errors.Is(err, context.Canceled) {
			return "", nil, emitted, err
		}

		lastErr = err
	}

	return "", nil, false, lastErr
}

func (m *Manager) backoff(ctx context.Context, attempt int) error {
	if attempt == 0 {
		return nil
	}
	delay := time.Duration(attempt) * m.config.RetryDelay
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.config.MaxTotalTimeout > 0 {
		return context.WithTimeout(ctx, m.config.MaxTotalTimeout)
	}
	return context.WithCancel(ctx)
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, usage *Usage) {
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
