package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/whatif/internal/domain"
)

// resolveSnapshotID resolves a snapshot reference: exact id, unique id
// prefix, or exact name match.
func resolveSnapshotID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("snapshot ID is required")
	}

	snapshots, err := app.Snapshots.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range snapshots {
		if s.ID == input || strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range snapshots {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	return onePrefixMatch("snapshot", input, matches)
}

// resolveScenario resolves a scenario reference across all snapshots: exact
// id, unique id prefix, or exact name match.
func resolveScenario(ctx context.Context, app *App, input string) (*domain.Scenario, error) {
	if input == "" {
		return nil, fmt.Errorf("scenario ID is required")
	}

	snapshots, err := app.Snapshots.List(ctx)
	if err != nil {
		return nil, err
	}

	var all []*domain.Scenario
	for _, s := range snapshots {
		scenarios, err := app.Scenarios.ListBySnapshot(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, scenarios...)
	}

	for _, sc := range all {
		if sc.ID == input || strings.EqualFold(sc.Name, input) {
			return sc, nil
		}
	}

	var matches []*domain.Scenario
	for _, sc := range all {
		if strings.HasPrefix(sc.ID, input) {
			matches = append(matches, sc)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("scenario not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("scenario ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProjectID resolves a project reference within a snapshot: exact id,
// unique id prefix, or exact name match.
func resolveProjectID(snap *domain.Snapshot, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	for i := range snap.Projects {
		p := &snap.Projects[i]
		if p.ID == input || strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for i := range snap.Projects {
		if strings.HasPrefix(snap.Projects[i].ID, input) {
			matches = append(matches, snap.Projects[i].ID)
		}
	}
	return onePrefixMatch("project", input, matches)
}

func onePrefixMatch(kind, input string, matches []string) (string, error) {
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
