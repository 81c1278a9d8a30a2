package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFalsy(t *testing.T) {
	t.Parallel()

	falsy := []any{nil, false, "", 0.0, math.NaN(), 0}
	for _, v := range falsy {
		assert.True(t, IsFalsy(v), "expected %#v to be falsy", v)
	}

	truthy := []any{true, "0", "a", 1.0, -1.0, map[string]any{}, []any{}}
	for _, v := range truthy {
		assert.False(t, IsFalsy(v), "expected %#v to be truthy", v)
	}
}

func TestToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "p-1", want: "p-1"},
		{name: "whole float", in: 12.0, want: "12"},
		{name: "fraction", in: 12.5, want: "12.5"},
		{name: "bool", in: true, want: "true"},
		{name: "nil", in: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{name: "float", in: 19.99, want: 19.99, wantOK: true},
		{name: "numeric string", in: " 42.5 ", want: 42.5, wantOK: true},
		{name: "blank string", in: "  ", want: 0, wantOK: true},
		{name: "nil", in: nil, want: 0, wantOK: true},
		{name: "garbage", in: "12abc", want: 0, wantOK: false},
		{name: "object", in: map[string]any{}, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ToNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{name: "float truncates", in: 2.7, want: 2, wantOK: true},
		{name: "string fraction", in: "3.9", want: 3, wantOK: true},
		{name: "string prefix", in: "12abc", want: 12, wantOK: true},
		{name: "negative", in: "-5", want: -5, wantOK: true},
		{name: "no digits", in: "abc", want: 0, wantOK: false},
		{name: "bool", in: true, want: 0, wantOK: false},
		{name: "nil", in: nil, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ToInt(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
