package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth == nil || cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("Auth.TokenTTL = %v, want 168h", cfg.Auth)
	}
	if cfg.Auth.MinPasswordLength != 6 {
		t.Fatalf("Auth.MinPasswordLength = %d, want 6", cfg.Auth.MinPasswordLength)
	}
	if cfg.Upload == nil || cfg.Upload.MaxBytes != 5*1024*1024 {
		t.Fatalf("Upload.MaxBytes = %v, want 5MB", cfg.Upload)
	}
	if cfg.PubSub == nil || cfg.PubSub.Provider != "" || cfg.PubSub.WorkerPort != 8081 {
		t.Fatalf("PubSub = %+v, want disabled provider on port 8081", cfg.PubSub)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{TokenTTL: time.Hour, MinPasswordLength: 10},
		Upload: &UploadConfig{MaxBytes: 1024},
	}
	cfg.HTTP.MaxRequestBodySize = "2MB"

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != "2MB" || cfg.Auth.TokenTTL != time.Hour ||
		cfg.Auth.MinPasswordLength != 10 || cfg.Upload.MaxBytes != 1024 {
		t.Fatalf("configured values were overwritten: %+v %+v %+v", cfg.HTTP, cfg.Auth, cfg.Upload)
	}
}

func TestCORSConfig_Origins(t *testing.T) {
	tests := []struct {
		name string
		cfg  *CORSConfig
		want []string
	}{
		{name: "nil config", cfg: nil, want: nil},
		{name: "empty", cfg: &CORSConfig{AllowOrigins: ""}, want: nil},
		{
			name: "comma list with blanks",
			cfg:  &CORSConfig{AllowOrigins: " http://localhost:3000, ,http://127.0.0.1:3000 "},
			want: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.Origins()
			if len(got) != len(tt.want) {
				t.Fatalf("Origins() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Origins()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
