package importer

import (
	"strings"

	"github.com/alexanderramin/shopfloor/internal/domain"
)

// Browser snapshots store stages and health as display labels, in English
// or Korean, rather than as the enum values used here.
var stageAliases = map[string]domain.ProcessStage{
	"검수예정": domain.StagePendingInspection,
	"검수확정": domain.StageConfirmedInspection,
	"검수완료": domain.StageInspectionCompleted,
	"출고확정": domain.StageConfirmedShipment,
	"출고완료": domain.StageShipmentCompleted,
}

var healthAliases = map[string]domain.HealthStatus{
	"정상": domain.HealthNormal,
	"지연": domain.HealthDelayed,
	"완료": domain.HealthCompleted,
}

func init() {
	for _, s := range domain.ProcessStages {
		stageAliases[strings.ToLower(s.Label())] = s
	}
	for _, h := range domain.HealthStatuses {
		healthAliases[strings.ToLower(h.Label())] = h
	}
}

// parseStage accepts an enum value or a known label. Empty means the
// default stage.
func parseStage(raw string) (domain.ProcessStage, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.StagePendingInspection, true
	}
	if s := domain.ProcessStage(raw); s.Valid() {
		return s, true
	}
	s, ok := stageAliases[strings.ToLower(raw)]
	return s, ok
}

func parseHealth(raw string) (domain.HealthStatus, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.HealthNormal, true
	}
	if h := domain.HealthStatus(raw); h.Valid() {
		return h, true
	}
	h, ok := healthAliases[strings.ToLower(raw)]
	return h, ok
}

// projectProductionNumber falls back to the first item's production number
// for snapshots that only record it per item.
func projectProductionNumber(p *ProjectJSON) string {
	if p.ProductionNumber != "" {
		return p.ProductionNumber
	}
	for _, item := range p.ManagementItems {
		if item.ProductionNumber != "" {
			return item.ProductionNumber
		}
	}
	return ""
}
