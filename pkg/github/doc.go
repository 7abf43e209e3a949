// Package github reconciles declarative issue label categories against a GitHub
// repository.
//
// The package includes:
// - Configuration models for label categories, decoded from YAML in document order
// - LabelClient interface and a go-github backed implementation
// - ApplyLabel, which creates a label and falls back to updating it
// - Reconciler, which applies categories strictly in order and stops at the first failure
// - Structured error types for configuration, credential, reference and API failures
package github
