package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/readmedoctor/readme-doctor/internal/adapters/outbound/config"
	"github.com/readmedoctor/readme-doctor/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := appconfig.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, appconfig.FileName, `
path: docs/README.md
minScore: 60
sections:
  faq: false
  altImages: false
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "docs/README.md", cfg.Path)
	assert.Equal(t, 60, cfg.MinScore)
	assert.False(t, cfg.Enabled(domain.SectionFAQ))
	assert.False(t, cfg.Enabled(domain.SectionAltImages))
	assert.True(t, cfg.Enabled(domain.SectionRoadmap), "unlisted sections stay enabled")
}

func TestYAMLLoader_LegacyJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, appconfig.LegacyFileName, `{"minScore": 50, "sections": {"roadmap": false}}`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MinScore)
	assert.Equal(t, "README.md", cfg.Path)
	assert.False(t, cfg.Enabled(domain.SectionRoadmap))
}

func TestYAMLLoader_YAMLTakesPrecedenceOverLegacy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, appconfig.FileName, "minScore: 70\n")
	writeFile(t, dir, appconfig.LegacyFileName, `{"minScore": 50}`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 70, cfg.MinScore)
}

func TestYAMLLoader_ExplicitZeroMinScore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, appconfig.FileName, "minScore: 0\n")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MinScore)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, appconfig.FileName, `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .readme-doctor.yaml")
}

func TestYAMLLoader_UnknownSection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, appconfig.FileName, "sections:\n  changelog: true\n")

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .readme-doctor.yaml")
	assert.Contains(t, err.Error(), "changelog")
}

func TestYAMLLoader_MinScoreOutOfRange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, appconfig.FileName, "minScore: 150\n")

	_, err := appconfig.New().Load(dir)
	assert.Error(t, err)
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, appconfig.FileName, "")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "minScore: 90\n")

	cfg, err := appconfig.NewWithFile(path).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.MinScore)
}

func TestYAMLLoader_ExplicitFileMissing(t *testing.T) {
	_, err := appconfig.NewWithFile(filepath.Join(t.TempDir(), "nope.yaml")).Load(".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
