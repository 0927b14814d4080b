package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }

func validSnapshot() *Snapshot {
	return &Snapshot{
		Projects: []ProjectJSON{{
			ID:               "p1",
			Vendor:           "Hanwha",
			ProductionNumber: "HW-1",
			ProcessStage:     "pending_inspection",
			HealthStatus:     "normal",
			ManagementItems: []ItemJSON{
				{ID: "i1", Name: "BOM", Deadline: ptrStr("2025-03-10"), WarningDays: ptrInt(7)},
				{ID: "i2", Name: "Drawing"},
			},
		}},
		Tasks: []TaskJSON{
			{ID: "t1", Title: "Wire panel", Priority: "High", Status: "doing"},
		},
	}
}

func TestParseSnapshot_Valid(t *testing.T) {
	data := []byte(`{"projects":[{"vendor":"Hanwha","productionNumber":"HW-1","managementItems":[{"name":"BOM","deadline":"2025-03-10","warningDays":0}]}],"tasks":[]}`)
	s, err := ParseSnapshot(data)
	require.NoError(t, err)
	require.Len(t, s.Projects, 1)
	assert.Equal(t, "Hanwha", s.Projects[0].Vendor)
	require.Len(t, s.Projects[0].ManagementItems, 1)
	assert.Equal(t, 0, *s.Projects[0].ManagementItems[0].WarningDays)
}

func TestParseSnapshot_SchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"missing tasks", `{"projects":[]}`, "tasks"},
		{"negative warning days", `{"projects":[{"vendor":"V","productionNumber":"P","managementItems":[{"name":"BOM","warningDays":-1}]}],"tasks":[]}`, "projects[0].managementItems[0].warningDays"},
		{"bad date shape", `{"projects":[{"vendor":"V","productionNumber":"P","fatDate":"03/05/2025"}],"tasks":[]}`, "projects[0].fatDate"},
		{"bad task status", `{"projects":[],"tasks":[{"title":"x","status":"blocked"}]}`, "tasks[0].status"},
		{"missing vendor", `{"projects":[{"productionNumber":"P"}],"tasks":[]}`, "projects[0]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(tc.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseSnapshot_InvalidJSON(t *testing.T) {
	_, err := ParseSnapshot([]byte(`{"projects": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing snapshot")
}

func TestValidateSnapshot_Valid(t *testing.T) {
	assert.Empty(t, ValidateSnapshot(validSnapshot()))
}

func TestValidateSnapshot_SemanticErrors(t *testing.T) {
	s := validSnapshot()
	s.Projects[0].ProcessStage = "Shipped"
	s.Projects[0].HealthStatus = "green"
	s.Projects[0].ManagementItems[1].ID = "i1"
	s.Projects[0].ManagementItems[0].Deadline = ptrStr("2025-02-30")
	s.Tasks = append(s.Tasks, TaskJSON{ID: "t1", Title: "dup"})

	errs := ValidateSnapshot(s)
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	assert.Len(t, errs, 5, "%v", msgs)
	assert.Contains(t, msgs, `projects[0].processStage: invalid value "Shipped"`)
	assert.Contains(t, msgs, `projects[0].managementItems[0].deadline: invalid date "2025-02-30" (expected YYYY-MM-DD)`)
	assert.Contains(t, msgs, `tasks[1].id: duplicate id "t1"`)
}

func TestConvert_AppliesDefaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &Snapshot{
		Projects: []ProjectJSON{{
			Vendor:           "Doosan",
			ProductionNumber: "DS-9",
			ManagementItems:  []ItemJSON{{Name: "BOM"}},
		}},
		Tasks: []TaskJSON{{Title: "a"}, {Title: "b"}, {Title: "c", Status: "done"}},
	}
	projects, tasks, err := Convert(s, now)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	p := projects[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.StagePendingInspection, p.ProcessStage)
	assert.Equal(t, domain.HealthNormal, p.HealthStatus)
	require.Len(t, p.Items, 1)
	assert.Equal(t, domain.DefaultWarningDays, p.Items[0].WarningDays)
	assert.Equal(t, "DS-9", p.Items[0].ProductionNumber)
	assert.Equal(t, p.ID, p.Items[0].ProjectID)

	require.Len(t, tasks, 3)
	assert.Equal(t, domain.PriorityMedium, tasks[0].Priority)
	assert.Equal(t, 0, tasks[0].Position)
	assert.Equal(t, 1, tasks[1].Position)
	assert.Equal(t, 0, tasks[2].Position, "positions are per column")
}

func TestLoadSnapshot_LegacySubTasks(t *testing.T) {
	s, err := LoadSnapshot("testdata/legacy.json")
	require.NoError(t, err)
	require.Empty(t, ValidateSnapshot(s))

	projects, tasks, err := Convert(s, time.Now())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, "proj-legacy", p.ID)
	assert.Equal(t, domain.HealthDelayed, p.HealthStatus)
	require.Len(t, p.Items, 3)
	assert.Equal(t, []string{"BOM", "Drawing", "Program"}, []string{p.Items[0].Name, p.Items[1].Name, p.Items[2].Name})
	assert.Equal(t, 5, p.Items[0].WarningDays)
	assert.Equal(t, "2025-02-20", domain.FormatDate(p.Items[0].Deadline))
	assert.Nil(t, p.Items[2].Deadline, "empty legacy deadline stays unset")
	assert.Equal(t, "Lee", p.Items[1].Manager)

	require.Len(t, tasks, 2)
	assert.Equal(t, domain.TaskDone, tasks[1].Status)
}

func TestLoadSnapshot_BrowserBlob(t *testing.T) {
	s, err := LoadSnapshot("testdata/browser.json")
	require.NoError(t, err)
	require.Empty(t, ValidateSnapshot(s))

	projects, tasks, err := Convert(s, time.Now())
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Len(t, tasks, 1)

	first, second, third := projects[0], projects[1], projects[2]
	assert.Equal(t, domain.StagePendingInspection, first.ProcessStage)
	assert.Equal(t, domain.HealthNormal, first.HealthStatus)
	assert.Equal(t, "P-25-001", first.ProductionNumber, "taken from the first item")
	assert.Equal(t, domain.StageConfirmedInspection, second.ProcessStage)
	assert.Equal(t, domain.HealthDelayed, second.HealthStatus)
	assert.Equal(t, domain.StageConfirmedShipment, third.ProcessStage)
	assert.Equal(t, domain.HealthCompleted, third.HealthStatus)
	require.Len(t, third.Items, 3)

	assert.Equal(t, "m1", first.Items[0].ID)
	assert.Equal(t, "m2", first.Items[1].ID)
	require.Len(t, second.Items, 1)
	assert.NotEqual(t, "m1", second.Items[0].ID, "reused item id is replaced")
	assert.Equal(t, "P-25-002", second.Items[0].ProductionNumber)
	assert.Equal(t, 5, second.Items[0].WarningDays)
}

func TestValidateSnapshot_ItemIDsScopedToProject(t *testing.T) {
	s := validSnapshot()
	other := s.Projects[0]
	other.ID = "p2"
	s.Projects = append(s.Projects, other)
	assert.Empty(t, ValidateSnapshot(s))
}

func TestParseStageAndHealthLabels(t *testing.T) {
	stages := map[string]domain.ProcessStage{
		"":                     domain.StagePendingInspection,
		"inspection_completed": domain.StageInspectionCompleted,
		"Pending Inspection":   domain.StagePendingInspection,
		"shipment completed":   domain.StageShipmentCompleted,
		"출고완료":                 domain.StageShipmentCompleted,
	}
	for raw, want := range stages {
		got, ok := parseStage(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := parseStage("Shipped")
	assert.False(t, ok)

	health := map[string]domain.HealthStatus{
		"":        domain.HealthNormal,
		"delayed": domain.HealthDelayed,
		"Normal":  domain.HealthNormal,
		"완료":      domain.HealthCompleted,
	}
	for raw, want := range health {
		got, ok := parseHealth(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok = parseHealth("green")
	assert.False(t, ok)
}

func TestFromDomain_RoundTripsThroughSchema(t *testing.T) {
	deadline := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	projects := []*domain.Project{{
		ID: "p1", Vendor: "Hanwha", ProductionNumber: "HW-1",
		ProcessStage: domain.StageConfirmedShipment, HealthStatus: domain.HealthCompleted,
		Items: []domain.ManagementItem{
			{ID: "i2", Name: "Drawing", OrderIndex: 1},
			{ID: "i1", Name: "BOM", Deadline: &deadline, WarningDays: 0, OrderIndex: 0},
		},
	}}
	tasks := []*domain.Task{{ID: "t1", Title: "Ship", Priority: domain.PriorityLow, Status: domain.TaskDone, Position: 2}}

	snap := FromDomain(projects, tasks, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-01T00:00:00Z", snap.ExportedAt)
	require.Len(t, snap.Projects[0].ManagementItems, 2)
	assert.Equal(t, "BOM", snap.Projects[0].ManagementItems[0].Name, "items written in order")
	assert.Equal(t, 0, *snap.Projects[0].ManagementItems[0].WarningDays, "zero warning days kept")

	data, err := snap.Marshal()
	require.NoError(t, err)

	parsed, err := ParseSnapshot(data)
	require.NoError(t, err)
	require.Empty(t, ValidateSnapshot(parsed))

	gotProjects, gotTasks, err := Convert(parsed, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", domain.FormatDate(gotProjects[0].Items[0].Deadline))
	assert.Equal(t, 0, gotProjects[0].Items[0].WarningDays)
	assert.Equal(t, 2, gotTasks[0].Position)
}

func TestFromDomain_EmptyStoreIsValid(t *testing.T) {
	data, err := FromDomain(nil, nil, time.Now()).Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projects": []`)
	_, err = ParseSnapshot(data)
	assert.NoError(t, err)
}

func TestJSONPointerToPath(t *testing.T) {
	assert.Equal(t, "", jsonPointerToPath(""))
	assert.Equal(t, "tasks", jsonPointerToPath("/tasks"))
	assert.Equal(t, "projects[0].managementItems[2].name", jsonPointerToPath("/projects/0/managementItems/2/name"))
}
