package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "storefront",
			},
		},
		"upload": map[string]any{
			"bucketUrl":     "mem://",
			"publicBaseUrl": "/uploads",
		},
		"cors": map[string]any{
			"allowOrigins": "",
		},
		"auth": map[string]any{
			"tokenTTL": "168h",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "UPLOAD_BUCKETURL", want: "upload.bucketUrl"},
		{envKey: "UPLOAD_PUBLIC_BASE_URL", want: "upload.publicBaseUrl"},
		{envKey: "POSTGRES_MASTER_USER_NAME", want: "postgres.master.userName"},
		{envKey: "UPLOAD_PUBLIC_URL", want: "upload.public.url"},
		{envKey: "CORS_ALLOWORIGINS", want: "cors.allowOrigins"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configName)
	yamlDoc := "http:\n  port: 3001\n  maxRequestBodySize: 6MB\nauth:\n  tokenTTL: 168h\ncors:\n  allowOrigins: http://localhost:3000\n"
	if err := os.WriteFile(path, []byte(yamlDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("HTTP_MAX_REQUEST_BODY_SIZE", "2MB")
	t.Setenv("AUTH_TOKENTTL", "1h")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://shop.example.com")

	cfg, err := load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.HTTP.Port != 8080 || cfg.HTTP.MaxRequestBodySize != "2MB" {
		t.Fatalf("http = %+v, want env overrides", cfg.HTTP)
	}
	if cfg.Auth == nil || cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("auth = %+v, want tokenTTL 1h", cfg.Auth)
	}
	if got := cfg.CORS.Origins(); len(got) != 1 || got[0] != "https://shop.example.com" {
		t.Fatalf("cors origins = %v", got)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := findConfigFile([]string{dir}); err == nil {
		t.Fatal("expected an error for a directory without config.yaml")
	}

	if err := os.WriteFile(filepath.Join(dir, configName), []byte("env:\n  env: test\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := findConfigFile([]string{filepath.Join(dir, "missing"), dir})
	if err != nil || got != filepath.Join(dir, configName) {
		t.Fatalf("findConfigFile = %q, %v", got, err)
	}
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_2_HOST":     "replica-c",
		"POSTGRES_REPLICAS_2_PORT":     "5432",
	}

	replicas := replicasFromEnv(func(k string) string { return env[k] })

	if len(replicas) != 1 || replicas[0].Host != "replica-a" || replicas[0].UserName != "reader" {
		t.Fatalf("replicas = %+v, want only replica-a", replicas)
	}
}
