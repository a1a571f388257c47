package domain

// Params is a normalized, upstream-ready parameter set for a single
// Graph API call: a flat mapping from upstream parameter name to value.
// It is built fresh per request, contains only keys the caller actually
// supplied and that passed validation, and is never mutated after
// construction.
type Params map[string]any
