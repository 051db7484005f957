package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ChangeLog", cfg.File)
	assert.False(t, cfg.Plain)
	assert.Equal(t, 5, cfg.ShowLast)
	assert.Equal(t, "2006-01-02", cfg.DateFormat)
	assert.Equal(t, 20, cfg.SuggestLimit)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("file: docs/ChangeLog\nshow_last: 12\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "docs/ChangeLog", cfg.File)
	assert.Equal(t, 12, cfg.ShowLast)
	// Untouched keys keep their defaults.
	assert.Equal(t, 20, cfg.SuggestLimit)
}

func TestLoad_EnvironmentOverridesProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("file: docs/ChangeLog\n"), 0o644))

	t.Setenv("CHLOG_FILE", "CHANGES")
	t.Setenv("CHLOG_SHOW_LAST", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "CHANGES", cfg.File)
	assert.Equal(t, 3, cfg.ShowLast)
}

func TestLoad_ExplicitMissingConfigFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("file: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*Configuration)
		wantErr bool
	}{
		"valid defaults":         {mutate: func(*Configuration) {}, wantErr: false},
		"empty file":             {mutate: func(c *Configuration) { c.File = "" }, wantErr: true},
		"negative show_last":     {mutate: func(c *Configuration) { c.ShowLast = -1 }, wantErr: true},
		"zero suggest_limit":     {mutate: func(c *Configuration) { c.SuggestLimit = 0 }, wantErr: true},
		"zero show_last is fine": {mutate: func(c *Configuration) { c.ShowLast = 0 }, wantErr: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &Configuration{
				File:         "ChangeLog",
				ShowLast:     5,
				DateFormat:   "2006-01-02",
				SuggestLimit: 20,
			}
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "show_last", envTransform("CHLOG_SHOW_LAST"))
	assert.Equal(t, "file", envTransform("CHLOG_FILE"))
}
