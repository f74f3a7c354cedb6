package authz

import "strings"

// Caller is the authenticated identity every workflow operation receives.
// It is built once per request from the token claims, never from globals.
type Caller struct {
	Code        string
	Name        string
	Department  string
	Designation string
	Role        string
}

// Provider answers the three authorization questions of the approval
// workflow. The static table-backed implementation can be swapped for a
// policy store without touching the workflow engine.
//
//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock
type Provider interface {
	IsManagerApprover(code string) bool
	IsHrApprover(code string) bool
	// EffectiveDepartments resolves the set of department labels the code
	// may approve for at the manager stage. Order is not significant.
	EffectiveDepartments(code, department string) []string
}

// Normalize canonicalizes a department label for comparison: trim,
// lower-case, collapse internal whitespace runs to single spaces.
// Matching is always exact over normalized labels, never substring.
func Normalize(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}

// NormalizeSet returns the normalized labels as a set, dropping empties.
func NormalizeSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if n := Normalize(label); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
