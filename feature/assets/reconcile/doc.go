// Package reconcile flags candidate records that are probable duplicates
// of records already in the store.
//
// A candidate matches an existing record when any one of the identity
// hints (name, hostname, ip_address) is a non-empty exact string match
// against the same field of the existing record. The heuristic is
// precision-biased: near-duplicates slip through rather than risk a false
// flag on a legitimate new asset.
//
// The package only detects; it never decides. The import orchestrator
// applies the caller's duplicate policy (skip or import anyway) to the
// returned matches.
package reconcile
