package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value for an optional YYYY-MM-DD date. Passing an
// empty string clears the date.
type dateValue struct {
	t *time.Time
}

func (d *dateValue) String() string {
	if d.t == nil {
		return ""
	}
	return domain.FormatDate(d.t)
}

func (d *dateValue) Set(s string) error {
	t, err := domain.ParseOptionalDate(s)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// enumValue restricts a string flag to a closed set.
type enumValue struct {
	value   string
	allowed []string
}

func newEnumValue(def string, allowed []string) *enumValue {
	return &enumValue{value: def, allowed: allowed}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	for _, a := range e.allowed {
		if strings.EqualFold(s, a) {
			e.value = a
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(e.allowed, "|"))
}

func (e *enumValue) Type() string { return "string" }

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// itemFlags are shared by "project item add" and "project item update".
type itemFlags struct {
	name        string
	manager     string
	prodNo      string
	deadline    dateValue
	warningDays int
}

func (f *itemFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("item", pflag.ContinueOnError)
	fs.StringVar(&f.name, "name", "", "Item name (e.g. BOM, Drawing)")
	fs.StringVar(&f.manager, "manager", "", "Responsible manager")
	fs.StringVar(&f.prodNo, "prod-no", "", "Production number (defaults to the project's)")
	fs.Var(&f.deadline, "deadline", "Deadline (YYYY-MM-DD, empty to clear)")
	fs.IntVar(&f.warningDays, "warning", domain.DefaultWarningDays, "Days before the deadline the warning starts")
	return fs
}

// projectFlags are shared by "project add" and "project update".
type projectFlags struct {
	vendor   string
	country  string
	prodNo   string
	pm       string
	manager  string
	fat      dateValue
	delivery dateValue
	stage    *enumValue
	health   *enumValue
}

func newProjectFlags() *projectFlags {
	return &projectFlags{
		stage:  newEnumValue(string(domain.StagePendingInspection), enumStrings(domain.ProcessStages)),
		health: newEnumValue(string(domain.HealthNormal), enumStrings(domain.HealthStatuses)),
	}
}

func (f *projectFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("project", pflag.ContinueOnError)
	fs.StringVar(&f.vendor, "vendor", "", "Vendor name")
	fs.StringVar(&f.country, "country", "", "Destination country")
	fs.StringVar(&f.prodNo, "prod-no", "", "Production number")
	fs.StringVar(&f.pm, "pm", "", "Project manager")
	fs.StringVar(&f.manager, "manager", "", "Responsible manager")
	fs.Var(&f.fat, "fat", "FAT date (YYYY-MM-DD, empty to clear)")
	fs.Var(&f.delivery, "delivery", "Delivery date (YYYY-MM-DD, empty to clear)")
	fs.Var(f.stage, "stage", "Process stage ("+strings.Join(f.stage.allowed, "|")+")")
	fs.Var(f.health, "health", "Health status ("+strings.Join(f.health.allowed, "|")+")")
	return fs
}

// taskFlags are shared by "task add" and "task update".
type taskFlags struct {
	title    string
	assignee string
	priority *enumValue
	due      dateValue
}

func newTaskFlags() *taskFlags {
	return &taskFlags{priority: newEnumValue(string(domain.PriorityMedium), enumStrings(domain.TaskPriorities))}
}

func (f *taskFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("task", pflag.ContinueOnError)
	fs.StringVar(&f.title, "title", "", "Task title")
	fs.StringVar(&f.assignee, "assignee", "", "Assignee")
	fs.Var(f.priority, "priority", "Priority (High|Medium|Low)")
	fs.Var(&f.due, "due", "Due date (YYYY-MM-DD, empty to clear)")
	return fs
}

// parsePosition converts a 1-based position argument to a 0-based index.
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q (want 1 or more)", s)
	}
	return n - 1, nil
}
