package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProject() *Project {
	return &Project{
		ID:               "550e8400-e29b-41d4-a716-446655440000",
		Vendor:           "Hanwha",
		ProductionNumber: "P-2025-001",
		PM:               "Kim",
		Manager:          "Lee",
		ProcessStage:     StagePendingInspection,
		HealthStatus:     HealthNormal,
		Items:            []ManagementItem{{Name: "BOM", WarningDays: 7}},
	}
}

func TestProjectValidate_Valid(t *testing.T) {
	assert.NoError(t, validProject().Validate())
}

func TestProjectValidate_MissingRequired(t *testing.T) {
	p := validProject()
	p.Vendor = "  "
	p.ProductionNumber = ""
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "vendor is required")
	assert.Contains(t, err.Error(), "production_number is required")
}

func TestProjectValidate_UnknownEnums(t *testing.T) {
	p := validProject()
	p.ProcessStage = "shipped"
	p.HealthStatus = "green"
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "process_stage")
	assert.Contains(t, err.Error(), "health_status")
}

func TestProjectValidate_NegativeWarningDays(t *testing.T) {
	p := validProject()
	p.Items[0].WarningDays = -1
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[0].warning_days")
}

func TestProjectValidate_DeliveryBeforeFAT(t *testing.T) {
	p := validProject()
	fat := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	delivery := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	p.FATDate, p.DeliveryDate = &fat, &delivery
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery_date")
}

func TestProjectMatches(t *testing.T) {
	p := validProject()
	cases := []struct {
		term string
		want bool
	}{
		{"", true},
		{"hanwha", true},
		{"HANWHA", true},
		{"kim", true},
		{"lee", true},
		{"2025-001", true},
		{"samsung", false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("term=%q", tc.term), func(t *testing.T) {
			assert.Equal(t, tc.want, p.Matches(tc.term))
		})
	}
}

func TestProjectMatches_IgnoresCountry(t *testing.T) {
	p := validProject()
	p.Country = "Vietnam"
	assert.False(t, p.Matches("vietnam"))
}

func TestDisplayID(t *testing.T) {
	p := &Project{ID: "550e8400-e29b-41d4-a716-446655440000"}
	assert.Equal(t, "550e8400", p.DisplayID())
	assert.Equal(t, "abc", (&Project{ID: "abc"}).DisplayID())
}

func TestItemByID(t *testing.T) {
	p := validProject()
	p.Items[0].ID = "item-1"
	require.NotNil(t, p.ItemByID("item-1"))
	assert.Nil(t, p.ItemByID("missing"))
}

func TestProcessStageLabels(t *testing.T) {
	for _, s := range ProcessStages {
		assert.True(t, s.Valid())
		assert.NotEqual(t, string(s), s.Label())
	}
	assert.Equal(t, "Confirmed Shipment", StageConfirmedShipment.Label())
	assert.False(t, ProcessStage("All").Valid())
}

func TestDeadlineStatusSeverity(t *testing.T) {
	assert.Less(t, DeadlineNormal.Severity(), DeadlineWarning.Severity())
	assert.Less(t, DeadlineWarning.Severity(), DeadlineOverdue.Severity())
}
