package affiliates

import "strings"

// Registry is an immutable set of affiliate codes eligible for VIP access.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	codes map[string]struct{}
}

// Normalize prepares a code for lookup: whitespace trimmed, uppercased.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewRegistry builds a registry from the given codes, normalizing each one.
func NewRegistry(codes []string) *Registry {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[Normalize(c)] = struct{}{}
	}
	return &Registry{codes: set}
}

// Default returns a registry seeded with the operator's CR whitelist.
func Default() *Registry {
	return NewRegistry(crWhitelist)
}

// IsEligible reports whether the code belongs to the registry.
// Matching is exact after normalization; no partial or fuzzy matches.
func (r *Registry) IsEligible(code string) bool {
	_, ok := r.codes[Normalize(code)]
	return ok
}

// Size returns the number of registered codes.
func (r *Registry) Size() int {
	return len(r.codes)
}
