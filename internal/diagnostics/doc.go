// Package diagnostics derives positioned markers from a parsed document.
// Two independent read-only passes feed one flat marker list: the syntax
// pass reads parse errors and missing tokens off the tree shape, and the
// semantic pass cross-checks extracted components against the registry of
// known component kinds. Each publish cycle fully replaces the previous
// marker set; nothing is merged or deduplicated across cycles.
package diagnostics
