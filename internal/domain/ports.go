package domain

// ConfigLoader resolves the effective Config for a project directory.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// DocumentStore reads and writes the documents under evaluation.
// Read returns "" without error when the file does not exist.
type DocumentStore interface {
	Read(path string) (string, error)
	Write(path, text string) error
}

// ScoreHistory persists score entries for a project.
type ScoreHistory interface {
	Save(projectPath string, entry ScoreEntry) error
	Load(projectPath string) ([]ScoreEntry, error)
}

// GitInfo exposes repository metadata for history entries.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	HasUncommittedChanges(docPath string) (bool, error)
}
