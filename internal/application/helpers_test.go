package application_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/config"
	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/document"
	"github.com/readmedoctor/readme-doctor/internal/application"
)

const fixturesDir = "../../testdata/readmes"

func fixture(name string) string {
	return filepath.Join(fixturesDir, name)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newCheckService() *application.CheckService {
	return application.NewCheckService(config.New(), document.New(), quietLogger())
}

// copyFixture copies a fixture directory into a temp dir so tests may write.
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	dst := t.TempDir()
	src := fixture(name)
	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(src, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dst, e.Name()), data, 0644))
	}
	return dst
}
