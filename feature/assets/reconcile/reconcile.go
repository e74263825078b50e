package reconcile

import (
	"sort"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/schema"
)

// hintFields are the identity fields compared between candidates and
// existing records, in match-report order.
var hintFields = []string{schema.FieldName, schema.FieldHostname, schema.FieldIPAddress}

// ref remembers where an existing record sits in the snapshot so matches
// can be reported in store order.
type ref struct {
	pos int
	id  string
}

// Index holds an existing-record snapshot keyed by identity hint for
// exact-match lookup. Build it once per snapshot and query it for every
// candidate.
type Index struct {
	byField map[string]map[string][]ref
}

// NewIndex builds the duplicate lookup index from the existing records.
func NewIndex(existing []*models.Asset) *Index {
	ix := &Index{byField: make(map[string]map[string][]ref, len(hintFields))}
	for _, f := range hintFields {
		ix.byField[f] = make(map[string][]ref)
	}
	for pos, rec := range existing {
		for f, v := range rec.IdentityHints() {
			ix.byField[f][v] = append(ix.byField[f][v], ref{pos: pos, id: rec.ID})
		}
	}
	return ix
}

// Match returns the IDs of existing records sharing any identity hint with
// the candidate, in store order without duplicates. Matching is exact on
// non-empty values only; near-duplicates are not detected.
func (ix *Index) Match(a *models.Asset) []string {
	hints := a.IdentityHints()
	var found []ref
	seen := make(map[string]bool)
	for _, f := range hintFields {
		v, ok := hints[f]
		if !ok {
			continue
		}
		for _, r := range ix.byField[f][v] {
			if !seen[r.id] {
				seen[r.id] = true
				found = append(found, r)
			}
		}
	}
	if len(found) == 0 {
		return nil
	}
	sort.Slice(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	ids := make([]string, len(found))
	for i, r := range found {
		ids[i] = r.id
	}
	return ids
}

// Reconcile compares candidates against the existing-record snapshot and
// returns the duplicate matches plus the candidates that matched nothing.
// Candidate order is preserved; disposition of the matches (skip or
// import anyway) is the caller's policy decision.
func Reconcile(candidates []*models.Asset, existing []*models.Asset) ([]models.DuplicateMatch, []*models.Asset) {
	ix := NewIndex(existing)

	var matches []models.DuplicateMatch
	unmatched := make([]*models.Asset, 0, len(candidates))
	for i, c := range candidates {
		ids := ix.Match(c)
		if len(ids) > 0 {
			matches = append(matches, models.DuplicateMatch{CandidateIndex: i, ExistingIDs: ids})
			continue
		}
		unmatched = append(unmatched, c)
	}
	return matches, unmatched
}
