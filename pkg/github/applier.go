package github

import (
	"context"
	"errors"
	"fmt"

	"labelconductor/pkg/logging"
)

// CreateOutcome is the result of the create attempt for one label. A failed
// attempt carries its cause and sends the label down the update path.
type CreateOutcome struct {
	Created bool
	Cause   error
}

// attemptCreate issues the create call and reports its outcome without failing
func attemptCreate(ctx context.Context, client LabelClient, repo Repository, label Label) CreateOutcome {
	if err := client.CreateLabel(ctx, repo.Owner, repo.Name, label); err != nil {
		return CreateOutcome{Cause: err}
	}
	return CreateOutcome{Created: true}
}

// ApplyLabel ensures label exists on repo with the given color and description.
// It creates the label and, if that fails for any reason, updates the label of
// the same name instead. Only the update error is returned.
func ApplyLabel(ctx context.Context, client LabelClient, repo Repository, label Label) (ApplyResult, error) {
	if label.Name == "" {
		return ApplyResult{}, errors.New("label name cannot be empty")
	}

	log := logging.FromContext(ctx).With().Str("label", label.Name).Logger()

	outcome := attemptCreate(ctx, client, repo, label)
	if outcome.Created {
		log.Info().Str("action", string(ApplyActionCreate)).Msg("applied label")
		return ApplyResult{Label: label, Action: ApplyActionCreate}, nil
	}

	log.Debug().
		Err(outcome.Cause).
		Bool("already_exists", IsAlreadyExists(outcome.Cause)).
		Msg("failed to create label, updating instead")

	if err := client.UpdateLabel(ctx, repo.Owner, repo.Name, label.Name, label); err != nil {
		return ApplyResult{}, fmt.Errorf("failed to apply label %s to %s: %w", label.Name, repo, err)
	}

	log.Info().Str("action", string(ApplyActionUpdate)).Msg("applied label")
	return ApplyResult{Label: label, Action: ApplyActionUpdate}, nil
}
