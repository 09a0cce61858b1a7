package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAPIBase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"https://economy.example.com", "https://economy.example.com"},
		{"https://economy.example.com/", "https://economy.example.com"},
		{"https://economy.example.com///", "https://economy.example.com"},
		{"https://economy.example.com/api", "https://economy.example.com"},
		{"https://economy.example.com/api/", "https://economy.example.com"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeAPIBase(tc.in), "input %q", tc.in)
	}
}
