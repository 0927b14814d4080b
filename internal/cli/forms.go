package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// shopfloorHuhTheme matches huh forms to the formatter palette.
func shopfloorHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if _, err := domain.ParseOptionalDate(s); err != nil {
		return errors.New("use YYYY-MM-DD format")
	}
	return nil
}

// dateField binds a huh input to a dateValue through its text form.
func dateField(title string, v *dateValue, text *string) *huh.Input {
	*text = v.String()
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(text).
		Validate(func(s string) error {
			if err := validateOptionalDate(s); err != nil {
				return err
			}
			return v.Set(s)
		})
}

func stageOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.ProcessStages))
	for _, s := range domain.ProcessStages {
		opts = append(opts, huh.NewOption(s.Label(), string(s)))
	}
	return opts
}

// projectForm collects the fields of "project add" interactively.
func projectForm(f *projectFlags) *huh.Form {
	var fat, delivery string
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Vendor").Value(&f.vendor).Validate(validateRequired("vendor")),
			huh.NewInput().Title("Production number").Value(&f.prodNo).Validate(validateRequired("production number")),
			huh.NewInput().Title("Country").Value(&f.country),
			huh.NewInput().Title("PM").Value(&f.pm),
			huh.NewInput().Title("Manager").Value(&f.manager),
		),
		huh.NewGroup(
			dateField("FAT date (YYYY-MM-DD, blank for none)", &f.fat, &fat),
			dateField("Delivery date (YYYY-MM-DD, blank for none)", &f.delivery, &delivery),
			huh.NewSelect[string]().Title("Process stage").Options(stageOptions()...).Value(&f.stage.value),
		),
	).WithTheme(shopfloorHuhTheme()).WithShowHelp(false)
}

// ticketInput holds the support form's fields.
type ticketInput struct {
	title    string
	kind     string
	priority string
	content  string
}

func (in ticketInput) ticket() *domain.SupportTicket {
	return &domain.SupportTicket{
		Title:    strings.TrimSpace(in.title),
		Type:     domain.TicketType(in.kind),
		Priority: domain.TicketPriority(in.priority),
		Content:  strings.TrimSpace(in.content),
	}
}

func ticketForm(in *ticketInput) *huh.Form {
	if in.kind == "" {
		in.kind = string(domain.TicketOther)
	}
	if in.priority == "" {
		in.priority = string(domain.TicketNormal)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&in.title).Validate(validateRequired("title")),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Technical issue", string(domain.TicketTechnical)),
					huh.NewOption("Resource request", string(domain.TicketResource)),
					huh.NewOption("Access rights", string(domain.TicketAccess)),
					huh.NewOption("Other", string(domain.TicketOther)),
				).
				Value(&in.kind),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", string(domain.TicketLow)),
					huh.NewOption("Normal", string(domain.TicketNormal)),
					huh.NewOption("High", string(domain.TicketHigh)),
				).
				Value(&in.priority),
			huh.NewText().Title("Details").Value(&in.content).Validate(validateRequired("details")),
		),
	).WithTheme(shopfloorHuhTheme()).WithShowHelp(false)
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(shopfloorHuhTheme()).WithShowHelp(false)
}
