package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/shopfloor/internal/repository"
)

// matchID resolves input against ids: an exact match wins, otherwise a
// unique prefix.
func matchID(kind, input string, ids []string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", kind, input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveProjectID(ctx context.Context, a *App, input string) (string, error) {
	projects, err := a.Projects.List(ctx, repository.ProjectFilter{})
	if err != nil {
		return "", err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return matchID("project", input, ids)
}

// resolveItemID searches the management items of every project.
func resolveItemID(ctx context.Context, a *App, input string) (string, error) {
	projects, err := a.Projects.List(ctx, repository.ProjectFilter{})
	if err != nil {
		return "", err
	}
	var ids []string
	for _, p := range projects {
		for _, item := range p.Items {
			ids = append(ids, item.ID)
		}
	}
	return matchID("item", input, ids)
}

func resolveTaskID(ctx context.Context, a *App, input string) (string, error) {
	tasks, err := a.Tasks.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return matchID("task", input, ids)
}
