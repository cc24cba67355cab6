package common

import (
	"testing"
	"time"

	"github.com/catalogmapper/catalog-mapper/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q, want :8080", cfg.Server.GRPCAddr)
	}
	if cfg.Upload.MaxBytes != constants.MaxUploadBytes {
		t.Errorf("Upload.MaxBytes = %d, want %d", cfg.Upload.MaxBytes, constants.MaxUploadBytes)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("LLM.Timeout = %v, want 45s", cfg.LLM.Timeout)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/catalog")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("DB_MAX_CONNS", "7")

	cfg := LoadConfig()
	if cfg.Database.DSN != "postgres://localhost/catalog" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Server.GRPCAddr != ":9090" {
		t.Errorf("GRPCAddr = %q", cfg.Server.GRPCAddr)
	}
	if cfg.Upload.MaxBytes != 1024 {
		t.Errorf("MaxBytes = %d", cfg.Upload.MaxBytes)
	}
	if cfg.Database.MaxConns != 7 {
		t.Errorf("MaxConns = %d", cfg.Database.MaxConns)
	}
}

func TestValidateRequiresDSN(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{GRPCAddr: ":8080"},
		Upload: UploadConfig{MaxBytes: 1},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DB_URL")
	}
	cfg.Database.DSN = "postgres://localhost/catalog"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
