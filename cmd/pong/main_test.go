package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHistoryArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantN    int
		wantPath string
		wantErr  bool
	}{
		{"none", nil, 0, "", false},
		{"count", []string{"5"}, 5, "", false},
		{"path", []string{"pong.toml"}, 0, "pong.toml", false},
		{"count and path", []string{"3", "pong.json"}, 3, "pong.json", false},
		{"negative count", []string{"-3"}, 0, "", true},
		{"too many", []string{"3", "a.json", "b.json"}, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, path, err := parseHistoryArgs(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUsage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
