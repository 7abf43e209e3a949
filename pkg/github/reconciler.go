package github

import (
	"context"
	"fmt"

	"labelconductor/pkg/logging"
)

// Reconciler drives label categories onto a single repository
type Reconciler struct {
	client LabelClient
	repo   Repository
}

// NewReconciler creates a new reconciler instance
func NewReconciler(client LabelClient, repo Repository) *Reconciler {
	return &Reconciler{
		client: client,
		repo:   repo,
	}
}

// ReconcileCategory applies every label of the category in order, stopping at
// the first failure.
func (r *Reconciler) ReconcileCategory(ctx context.Context, category Category) ([]ApplyResult, error) {
	ctx = logging.WithField(ctx, "category", category.Prefix)

	results := make([]ApplyResult, 0, len(category.Labels))
	for _, entry := range category.Labels {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := ApplyLabel(ctx, r.client, r.repo, category.Label(entry))
		if err != nil {
			return results, fmt.Errorf("category %s: %w", category.Prefix, err)
		}
		results = append(results, result)
	}

	logging.FromContext(ctx).Info().Int("labels", len(results)).Msg("applied category")
	return results, nil
}

// ReconcileAll applies the categories in the order given. The returned summary
// covers everything applied before a failure.
func (r *Reconciler) ReconcileAll(ctx context.Context, categories []Category) (*Summary, error) {
	ctx = logging.WithField(ctx, "repository", r.repo.String())

	summary := &Summary{Repository: r.repo}
	for _, category := range categories {
		results, err := r.ReconcileCategory(ctx, category)
		summary.Results = append(summary.Results, results...)
		if err != nil {
			return summary, err
		}
		summary.Categories++
	}

	return summary, nil
}

// ReconcileCategory is a convenience wrapper for a single category
func ReconcileCategory(ctx context.Context, client LabelClient, repo Repository, category Category) ([]ApplyResult, error) {
	return NewReconciler(client, repo).ReconcileCategory(ctx, category)
}
