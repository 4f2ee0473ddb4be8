package config

import (
	"strings"
	"testing"
)

func TestLoadPostgRESTBackendRequiresSupabaseSettings(t *testing.T) {
	t.Setenv("DATA_BACKEND", BackendPostgREST)
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when SUPABASE_URL is missing")
	} else if !strings.Contains(err.Error(), "SUPABASE_URL") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}

	t.Setenv("SUPABASE_URL", "https://projeto.supabase.co")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when SUPABASE_ANON_KEY is missing")
	} else if !strings.Contains(err.Error(), "SUPABASE_ANON_KEY") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}

	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error with complete settings: %v", err)
	}
	if cfg.Supabase.URL != "https://projeto.supabase.co" {
		t.Errorf("unexpected Supabase URL: %s", cfg.Supabase.URL)
	}
}

func TestLoadSQLiteBackend(t *testing.T) {
	t.Setenv("DATA_BACKEND", BackendSQLite)
	t.Setenv("DB_CONNECTION_STRING", "./data/pedidos.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dados.Backend != BackendSQLite {
		t.Errorf("expected sqlite backend, got %s", cfg.Dados.Backend)
	}
}

func TestValidateUnknownBackend(t *testing.T) {
	cfg := &Config{Dados: DadosConfig{Backend: "oracle"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestValidateEmailSendingRequiresKey(t *testing.T) {
	cfg := &Config{
		Dados:    DadosConfig{Backend: BackendSQLite, ConnectionString: ":memory:"},
		Email:    EmailConfig{EnvioAtivo: true},
		Supabase: SupabaseConfig{},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when sending is enabled without RESEND_API_KEY")
	}
}
