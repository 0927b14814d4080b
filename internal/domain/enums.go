package domain

// ProcessStage is the workflow phase a project currently occupies.
type ProcessStage string

const (
	StagePendingInspection   ProcessStage = "pending_inspection"
	StageConfirmedInspection ProcessStage = "confirmed_inspection"
	StageInspectionCompleted ProcessStage = "inspection_completed"
	StageConfirmedShipment   ProcessStage = "confirmed_shipment"
	StageShipmentCompleted   ProcessStage = "shipment_completed"
)

// ProcessStages lists the stages in workflow order.
var ProcessStages = []ProcessStage{
	StagePendingInspection,
	StageConfirmedInspection,
	StageInspectionCompleted,
	StageConfirmedShipment,
	StageShipmentCompleted,
}

var stageLabels = map[ProcessStage]string{
	StagePendingInspection:   "Pending Inspection",
	StageConfirmedInspection: "Confirmed Inspection",
	StageInspectionCompleted: "Inspection Completed",
	StageConfirmedShipment:   "Confirmed Shipment",
	StageShipmentCompleted:   "Shipment Completed",
}

func (s ProcessStage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Label returns the display label, or the raw value for unknown stages.
func (s ProcessStage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// HealthStatus is the user-assigned overall risk label of a project.
type HealthStatus string

const (
	HealthNormal    HealthStatus = "normal"
	HealthDelayed   HealthStatus = "delayed"
	HealthCompleted HealthStatus = "completed"
)

// HealthStatuses lists health statuses in dashboard order.
var HealthStatuses = []HealthStatus{HealthNormal, HealthDelayed, HealthCompleted}

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthNormal, HealthDelayed, HealthCompleted:
		return true
	}
	return false
}

func (h HealthStatus) Label() string {
	switch h {
	case HealthNormal:
		return "Normal"
	case HealthDelayed:
		return "Delayed"
	case HealthCompleted:
		return "Completed"
	}
	return string(h)
}

// DeadlineStatus is the derived urgency of a single management item.
type DeadlineStatus string

const (
	DeadlineNormal  DeadlineStatus = "normal"
	DeadlineWarning DeadlineStatus = "warning"
	DeadlineOverdue DeadlineStatus = "overdue"
)

// Severity orders deadline statuses from least to most urgent.
func (d DeadlineStatus) Severity() int {
	switch d {
	case DeadlineOverdue:
		return 2
	case DeadlineWarning:
		return 1
	default:
		return 0
	}
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

var TaskPriorities = []TaskPriority{PriorityHigh, PriorityMedium, PriorityLow}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskTodo  TaskStatus = "todo"
	TaskDoing TaskStatus = "doing"
	TaskDone  TaskStatus = "done"
)

// TaskStatuses lists board columns left to right.
var TaskStatuses = []TaskStatus{TaskTodo, TaskDoing, TaskDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskDoing, TaskDone:
		return true
	}
	return false
}

// Label is the board column title.
func (s TaskStatus) Label() string {
	switch s {
	case TaskTodo:
		return "To Do"
	case TaskDoing:
		return "Doing"
	case TaskDone:
		return "Done"
	}
	return string(s)
}

type TicketType string

const (
	TicketTechnical TicketType = "technical"
	TicketResource  TicketType = "resource"
	TicketAccess    TicketType = "access"
	TicketOther     TicketType = "etc"
)

var TicketTypes = []TicketType{TicketTechnical, TicketResource, TicketAccess, TicketOther}

func (t TicketType) Valid() bool {
	switch t {
	case TicketTechnical, TicketResource, TicketAccess, TicketOther:
		return true
	}
	return false
}

type TicketPriority string

const (
	TicketLow    TicketPriority = "low"
	TicketNormal TicketPriority = "normal"
	TicketHigh   TicketPriority = "high"
)

var TicketPriorities = []TicketPriority{TicketLow, TicketNormal, TicketHigh}

func (p TicketPriority) Valid() bool {
	switch p {
	case TicketLow, TicketNormal, TicketHigh:
		return true
	}
	return false
}
