package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"text-to-calendar/pkg/gcalendar"
)

func TestInstalledAppConfig(t *testing.T) {
	if _, err := gcalendar.InstalledAppConfig([]byte(`{"broken":true}`)); err == nil {
		t.Errorf("expected error for non-oauth credentials")
	}

	cfg, err := gcalendar.InstalledAppConfig([]byte(`{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClientID != "id" || !strings.Contains(strings.Join(cfg.Scopes, " "), "calendar") {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestExchangeAndSave(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","token_type":"Bearer","refresh_token":"rt","expires_in":3600}`))
	}))
	defer ts.Close()

	creds := `{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"` + ts.URL + `/auth","token_uri":"` + ts.URL + `/token","redirect_uris":["http://localhost"]}}`
	cfg, err := gcalendar.InstalledAppConfig([]byte(creds))
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	path := filepath.Join(t.TempDir(), "token.json")
	tok, err := gcalendar.ExchangeAndSave(context.Background(), cfg, "code", path)
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if tok.AccessToken != "at" {
		t.Errorf("unexpected token %+v", tok)
	}

	data, _ := os.ReadFile(path)
	var saved map[string]any
	if err := json.Unmarshal(data, &saved); err != nil || saved["refresh_token"] != "rt" {
		t.Errorf("unexpected saved token %s", data)
	}
}
