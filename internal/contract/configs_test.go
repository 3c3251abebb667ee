package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtmap/debtmap/schema"
)

func validInput(t *testing.T) *ConfigRawInput {
	t.Helper()
	return &ConfigRawInput{
		TargetDirStr: t.TempDir(),
		Workers:      4,
		Output:       "text",
		Sort:         "hotspot",
		Precision:    DefaultPrecision,
		Emoji:        "yes",
		Color:        "yes",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	input := validInput(t)
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.TextMode, cfg.Output)
	assert.Equal(t, schema.SortByHotspot, cfg.SortBy)
	assert.Equal(t, schema.DefaultExtensions, cfg.Extensions)
	assert.Empty(t, cfg.Excludes)
	assert.Empty(t, cfg.Since)
	assert.Zero(t, cfg.Limit)
	assert.True(t, cfg.UseEmojis)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateSince(t *testing.T) {
	tests := []struct {
		name    string
		since   string
		wantErr bool
	}{
		{"empty", "", false},
		{"valid date", "2024-06-01", false},
		{"wrong layout", "01-06-2024", true},
		{"missing zero padding", "2024-6-1", true},
		{"not a date", "last week", true},
		{"impossible date", "2024-13-40", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(t)
			input.Since = tt.since
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.since, cfg.Since)
			}
		})
	}
}

func TestProcessAndValidateExtensions(t *testing.T) {
	input := validInput(t)
	input.Ext = "go, PY,.rs"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{".go", ".py", ".rs"}, cfg.Extensions)
}

func TestProcessAndValidateExcludes(t *testing.T) {
	input := validInput(t)
	input.Exclude = "vendor, build/, ,a//b"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"vendor", "build", "a/b"}, cfg.Excludes)
}

func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"zero workers", func(i *ConfigRawInput) { i.Workers = 0 }},
		{"negative limit", func(i *ConfigRawInput) { i.Limit = -1 }},
		{"bad output mode", func(i *ConfigRawInput) { i.Output = "xml" }},
		{"bad sort field", func(i *ConfigRawInput) { i.Sort = "size" }},
		{"bad emoji value", func(i *ConfigRawInput) { i.Emoji = "perhaps" }},
		{"bad color value", func(i *ConfigRawInput) { i.Color = "maybe" }},
		{"precision out of range", func(i *ConfigRawInput) { i.Precision = 9 }},
		{"parquet without output file", func(i *ConfigRawInput) { i.Output = "parquet" }},
		{"missing target dir", func(i *ConfigRawInput) { i.TargetDirStr = "/nonexistent/debtmap" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(t)
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		TargetDir:  ".",
		Extensions: []string{".go"},
		Excludes:   []string{"vendor"},
	}
	clone := cfg.Clone()
	clone.Extensions[0] = ".py"
	clone.Excludes[0] = "build"
	assert.Equal(t, ".go", cfg.Extensions[0])
	assert.Equal(t, "vendor", cfg.Excludes[0])
}
