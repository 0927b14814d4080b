package app

// ImportMode selects how an imported snapshot combines with stored data.
type ImportMode string

const (
	// ImportMerge upserts snapshot records by ID and keeps everything else.
	ImportMerge ImportMode = "merge"
	// ImportReplace deletes all projects and tasks before loading.
	ImportReplace ImportMode = "replace"
)

func (m ImportMode) Valid() bool {
	return m == ImportMerge || m == ImportReplace
}

type ImportResult struct {
	Mode            ImportMode
	ProjectsCreated int
	ProjectsUpdated int
	TasksCreated    int
	TasksUpdated    int
	ItemsTotal      int
}
