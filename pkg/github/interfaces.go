package github

import "context"

// LabelClient defines the label operations consumed by the reconciler
type LabelClient interface {
	// CreateLabel creates a new label on owner/repo
	CreateLabel(ctx context.Context, owner, repo string, label Label) error

	// UpdateLabel looks up currentName on owner/repo and overwrites it with label
	UpdateLabel(ctx context.Context, owner, repo, currentName string, label Label) error
}

// ApplyAction records which remote call left a label in its desired state
type ApplyAction string

const (
	ApplyActionCreate ApplyAction = "create"
	ApplyActionUpdate ApplyAction = "update"
)

// ApplyResult describes the outcome of applying one label
type ApplyResult struct {
	Label  Label       `json:"label"`
	Action ApplyAction `json:"action"`
}

// Summary aggregates the results of a reconciliation run
type Summary struct {
	Repository Repository    `json:"repository"`
	Categories int           `json:"categories"`
	Results    []ApplyResult `json:"results"`
}

// Count returns how many labels ended with the given action
func (s *Summary) Count(action ApplyAction) int {
	count := 0
	for _, result := range s.Results {
		if result.Action == action {
			count++
		}
	}
	return count
}
