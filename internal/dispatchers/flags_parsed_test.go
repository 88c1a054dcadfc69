package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		checkFor string
		want     bool
	}{
		{
			name:     "flag present",
			flags:    []string{"--verbose", "--debug"},
			checkFor: "--verbose",
			want:     true,
		},
		{
			name:     "flag not present",
			flags:    []string{"--verbose"},
			checkFor: "--debug",
			want:     false,
		},
		{
			name:     "empty flags",
			flags:    []string{},
			checkFor: "--verbose",
			want:     false,
		},
		{
			name:     "flag with value not detected as boolean",
			flags:    []string{"--limit=5"},
			checkFor: "--limit",
			want:     false,
		},
		{
			name:     "multiple flags, check last",
			flags:    []string{"--verbose", "--debug", "--force"},
			checkFor: "--force",
			want:     true,
		},
		{
			name:     "multiple flags, check first",
			flags:    []string{"--verbose", "--debug", "--force"},
			checkFor: "--verbose",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewParsedFlags(tt.flags)
			got := pf.Has(tt.checkFor)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsedFlags_String(t *testing.T) {
	tests := []struct {
		name       string
		flags      []string
		flagName   string
		defaultVal string
		want       string
	}{
		{
			name:       "flag present with value",
			flags:      []string{"--name=value"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "value",
		},
		{
			name:       "flag not present returns default",
			flags:      []string{"--other=value"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "default",
		},
		{
			name:       "empty flags returns default",
			flags:      []string{},
			flagName:   "--name",
			defaultVal: "default",
			want:       "default",
		},
		{
			name:       "flag with empty value",
			flags:      []string{"--name="},
			flagName:   "--name",
			defaultVal: "default",
			want:       "",
		},
		{
			name:       "flag value with equals sign",
			flags:      []string{"--url=https://example.com?param=value"},
			flagName:   "--url",
			defaultVal: "",
			want:       "https://example.com?param=value",
		},
		{
			name:       "multiple flags, extract correct one",
			flags:      []string{"--first=value1", "--second=value2", "--third=value3"},
			flagName:   "--second",
			defaultVal: "",
			want:       "value2",
		},
		{
			name:       "duplicate flags, last one wins",
			flags:      []string{"--name=first", "--name=second"},
			flagName:   "--name",
			defaultVal: "",
			want:       "second",
		},
		{
			name:       "switch without value returns default",
			flags:      []string{"--name"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewParsedFlags(tt.flags)
			got := pf.String(tt.flagName, tt.defaultVal)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsedFlags_Values(t *testing.T) {
	pf := NewParsedFlags([]string{"--property=a", "--other=x", "--property=b"})

	require.Equal(t, []string{"a", "b"}, pf.Values("--property"))
	require.Empty(t, pf.Values("--missing"))
}

func TestParsedFlags_Nil(t *testing.T) {
	var pf *ParsedFlags

	require.Nil(t, pf.Raw())
	require.False(t, pf.Has("--x"))
	require.Equal(t, "d", pf.String("--x", "d"))
}

func TestParsedFlags_Raw(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
	}{
		{
			name:  "empty flags",
			flags: []string{},
		},
		{
			name:  "single flag",
			flags: []string{"--verbose"},
		},
		{
			name:  "multiple flags",
			flags: []string{"--verbose", "--limit=5", "--since=2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewParsedFlags(tt.flags)
			got := pf.Raw()
			require.Equal(t, tt.flags, got)
		})
	}
}
