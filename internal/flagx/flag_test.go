package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.yaml", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.yaml"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not consumed as value",
			args:         []string{"-c", "-i", "5"},
			allowedFlags: []string{"-c", "-i"},
			want:         []string{"-c", "-i", "5"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-s", "one.db", "-s", "two.db"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s", "one.db", "-s", "two.db"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short flag", []string{"-c", "/etc/crammer.json"}, "/etc/crammer.json"},
		{"long flag", []string{"-config", "/etc/crammer.yaml"}, "/etc/crammer.yaml"},
		{"equals form", []string{"-config=/etc/crammer.yaml"}, "/etc/crammer.yaml"},
		{"last flag wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
		{"other flags only", []string{"-a", "http://x", "-i", "5"}, ""},
		{"nothing given", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}

func TestConfigFile_IgnoresEnvironment(t *testing.T) {
	t.Setenv("CRAMMER_CONFIG", "/from/env.json")
	assert.Empty(t, ConfigFile(nil))
}
