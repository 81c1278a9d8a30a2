package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0B"},
		{512, "512B"},
		{1024, "1KB"},
		{1536, "1.5KB"},
		{1100, "1.1KB"},
		{5 << 20, "5MB"},
		{6 << 20, "6MB"},
		{3 << 30, "3GB"},
		{-2048, "-2KB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.in))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{42 * time.Millisecond, "42ms"},
		{1234 * time.Millisecond, "1.23s"},
		{45 * time.Second, "45s"},
		{2*time.Minute + 5*time.Second, "2m05s"},
		{time.Hour + 30*time.Minute + 20*time.Second, "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}
