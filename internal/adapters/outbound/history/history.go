package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/readmedoctor/readme-doctor/internal/domain"
)

const historyFile = ".readme-doctor/history.json"

// maxEntries bounds the history file; older entries are dropped first.
const maxEntries = 200

// FileHistory implements domain.ScoreHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(projectPath string, entry domain.ScoreEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	fp := filepath.Join(projectPath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(projectPath string) ([]domain.ScoreEntry, error) {
	fp := filepath.Join(projectPath, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}

	return entries, nil
}

// ForPath filters entries down to one document.
func ForPath(entries []domain.ScoreEntry, path string) []domain.ScoreEntry {
	var out []domain.ScoreEntry
	for _, e := range entries {
		if e.Path == path {
			out = append(out, e)
		}
	}
	return out
}
