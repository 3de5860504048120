package config

import (
	"testing"

	"github.com/jacobhenn/unistellar/internal/rank"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 0},
		Database: DatabaseConfig{URL: "ws://localhost:8000/rpc"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database url")
	}
}

func TestValidate_InvalidScorer(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{URL: "ws://localhost:8000/rpc"},
		Search:   SearchConfig{DefaultScorer: "pagerank"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown scorer strategy")
	}
}

func TestValidate_ValidScorers(t *testing.T) {
	for _, scorer := range []string{"", rank.StrategySimilarity, rank.StrategyDistance} {
		t.Run("scorer="+scorer, func(t *testing.T) {
			cfg := Config{
				HTTP:     HTTPConfig{Port: 8080},
				Database: DatabaseConfig{URL: "ws://localhost:8000/rpc"},
				Search:   SearchConfig{DefaultScorer: scorer},
			}

			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for scorer %q: %v", scorer, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Namespace != "unistellar" {
		t.Errorf("expected Namespace='unistellar', got %q", cfg.Database.Namespace)
	}
	if cfg.Database.Database != "main" {
		t.Errorf("expected Database='main', got %q", cfg.Database.Database)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Search.DefaultScorer != rank.StrategySimilarity {
		t.Errorf("expected DefaultScorer=%q, got %q", rank.StrategySimilarity, cfg.Search.DefaultScorer)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{Namespace: "staging", Database: "scratch", ReadinessTimeout: 15},
		Search:   SearchConfig{DefaultScorer: rank.StrategyDistance},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Namespace != "staging" {
		t.Errorf("expected Namespace='staging', got %q", cfg.Database.Namespace)
	}
	if cfg.Search.DefaultScorer != rank.StrategyDistance {
		t.Errorf("expected DefaultScorer=%q, got %q", rank.StrategyDistance, cfg.Search.DefaultScorer)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("UNISTELLAR_TEST_VAR", "ws://db:8000/rpc")

	got := string(expandEnvVars([]byte("url: ${UNISTELLAR_TEST_VAR}")))
	if got != "url: ws://db:8000/rpc" {
		t.Errorf("expansion = %q", got)
	}

	got = string(expandEnvVars([]byte("port: ${UNISTELLAR_UNSET_VAR:-8080}")))
	if got != "port: 8080" {
		t.Errorf("default expansion = %q", got)
	}
}
