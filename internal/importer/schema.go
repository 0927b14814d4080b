package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotVersion is written into every export.
const SnapshotVersion = 1

// Snapshot is the whole-store JSON document: the projects and tasks arrays
// a browser front end keeps in local storage, plus export metadata.
type Snapshot struct {
	Version    int           `json:"version,omitempty"`
	ExportedAt string        `json:"exportedAt,omitempty"`
	Projects   []ProjectJSON `json:"projects"`
	Tasks      []TaskJSON    `json:"tasks"`
}

type ProjectJSON struct {
	ID               string     `json:"id,omitempty"`
	Vendor           string     `json:"vendor"`
	Country          string     `json:"country,omitempty"`
	ProductionNumber string     `json:"productionNumber"`
	PM               string     `json:"pm,omitempty"`
	Manager          string     `json:"manager,omitempty"`
	FATDate          *string    `json:"fatDate,omitempty"`
	DeliveryDate     *string    `json:"deliveryDate,omitempty"`
	ProcessStage     string     `json:"processStage,omitempty"`
	HealthStatus     string     `json:"healthStatus,omitempty"`
	ManagementItems  []ItemJSON `json:"managementItems"`

	// Earlier exports carried three fixed sub-tasks instead of an item list.
	BOM     *SubTaskJSON `json:"bom,omitempty"`
	Drawing *SubTaskJSON `json:"drawing,omitempty"`
	Program *SubTaskJSON `json:"program,omitempty"`
}

type ItemJSON struct {
	ID               string  `json:"id,omitempty"`
	ProductionNumber string  `json:"productionNumber,omitempty"`
	Name             string  `json:"name"`
	Manager          string  `json:"manager,omitempty"`
	Deadline         *string `json:"deadline,omitempty"`
	WarningDays      *int    `json:"warningDays,omitempty"`
}

type SubTaskJSON struct {
	Deadline    *string `json:"deadline,omitempty"`
	WarningDays *int    `json:"warningDays,omitempty"`
}

type TaskJSON struct {
	ID       string  `json:"id,omitempty"`
	Title    string  `json:"title"`
	Assignee string  `json:"assignee,omitempty"`
	Priority string  `json:"priority,omitempty"`
	Status   string  `json:"status,omitempty"`
	DueDate  *string `json:"dueDate,omitempty"`
	Position *int    `json:"position,omitempty"`
}

// LoadSnapshot reads a snapshot file, checks it against the JSON schema
// and decodes it.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data)
}

// ParseSnapshot checks data against the JSON schema and decodes it.
// Semantic checks are left to ValidateSnapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	if err := validateAgainstSchema(data); err != nil {
		return nil, err
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &s, nil
}

// Marshal renders s as indented JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return append(data, '\n'), nil
}
