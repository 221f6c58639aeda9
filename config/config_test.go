package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

const sampleConfig = `
calendar:
  timezone: UTC
  past_year_policy: older_than_last_year
llm:
  retry_delay: 250ms
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${TTC_TEST_GEMINI_KEY}
      model: gemini-2.5-flash
    - name: deepseek
      enabled: false
      priority: 2
      api_key: plain
      model: deepseek-chat
cors:
  allowed_origins: "chrome-extension://abc, moz-extension://def"
`

func TestLoadFile(t *testing.T) {
	viper.Reset()
	t.Setenv("TTC_TEST_GEMINI_KEY", "secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Calendar.FallbackTitle != "Event from Text" {
		t.Errorf("unexpected fallback title %q", cfg.Calendar.FallbackTitle)
	}
	if cfg.Calendar.PastYearPolicy != "older_than_last_year" {
		t.Errorf("unexpected policy %q", cfg.Calendar.PastYearPolicy)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[0].APIKey != "secret" {
		t.Errorf("expected env expansion, got %q", cfg.LLM.Providers[0].APIKey)
	}
	if cfg.LLM.Providers[1].APIKey != "plain" {
		t.Errorf("expected literal key, got %q", cfg.LLM.Providers[1].APIKey)
	}
	if cfg.LLM.RetryDelayDuration() != 250*time.Millisecond {
		t.Errorf("unexpected retry delay %v", cfg.LLM.RetryDelayDuration())
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "moz-extension://def" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	provider := ProviderConfig{Name: "gemini", Enabled: true, Priority: 1, Model: "m"}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{LLM: LLMConfig{Providers: []ProviderConfig{provider}}}, false},
		{"no providers", Config{}, true},
		{"none enabled", Config{LLM: LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Model: "m"}}}}, true},
		{"duplicate priority", Config{LLM: LLMConfig{Providers: []ProviderConfig{provider, provider}}}, true},
		{"bad policy", Config{
			LLM:      LLMConfig{Providers: []ProviderConfig{provider}},
			Calendar: CalendarConfig{PastYearPolicy: "never"},
		}, true},
		{"bad timezone", Config{
			LLM:      LLMConfig{Providers: []ProviderConfig{provider}},
			Calendar: CalendarConfig{Timezone: "Mars/Olympus"},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	if got := parseDuration("", time.Second); got != time.Second {
		t.Errorf("empty: got %v", got)
	}
	if got := parseDuration("nonsense", time.Second); got != time.Second {
		t.Errorf("invalid: got %v", got)
	}
	if got := parseDuration("2m", time.Second); got != 2*time.Minute {
		t.Errorf("valid: got %v", got)
	}
}
