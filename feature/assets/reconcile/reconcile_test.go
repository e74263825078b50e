package reconcile

import (
	"testing"

	"asset-exchange/feature/assets/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existing(id, name, hostname, ip string) *models.Asset {
	return &models.Asset{ID: id, Name: name, Hostname: hostname, IPAddress: ip}
}

func TestReconcileHostnameMatch(t *testing.T) {
	snapshot := []*models.Asset{
		existing("rec-1", "Old Server", "host1.local", "10.0.0.1"),
	}
	candidates := []*models.Asset{
		{Name: "New Name", Hostname: "host1.local"},
		{Name: "Unrelated", Hostname: "host9.local"},
	}

	matches, unmatched := Reconcile(candidates, snapshot)

	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].CandidateIndex)
	assert.Equal(t, []string{"rec-1"}, matches[0].ExistingIDs)

	require.Len(t, unmatched, 1)
	assert.Equal(t, "Unrelated", unmatched[0].Name)
}

func TestReconcileDisjointHostnames(t *testing.T) {
	snapshot := []*models.Asset{
		existing("rec-1", "A", "host1.local", ""),
		existing("rec-2", "B", "host2.local", ""),
	}
	candidates := []*models.Asset{
		{Name: "C", Hostname: "host3.local"},
		{Name: "D", Hostname: "host4.local"},
	}

	matches, unmatched := Reconcile(candidates, snapshot)

	assert.Empty(t, matches)
	assert.Len(t, unmatched, 2)
}

func TestReconcileMatchesOnAnyHint(t *testing.T) {
	snapshot := []*models.Asset{
		existing("rec-1", "Server One", "host1.local", "10.0.0.1"),
	}

	tests := []struct {
		name      string
		candidate *models.Asset
		match     bool
	}{
		{"by name", &models.Asset{Name: "Server One"}, true},
		{"by hostname", &models.Asset{Hostname: "host1.local"}, true},
		{"by address", &models.Asset{IPAddress: "10.0.0.1"}, true},
		{"no overlap", &models.Asset{Name: "Server Two", Hostname: "host2.local"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, _ := Reconcile([]*models.Asset{tt.candidate}, snapshot)
			if tt.match {
				assert.Len(t, matches, 1)
			} else {
				assert.Empty(t, matches)
			}
		})
	}
}

func TestReconcileEmptyHintsNeverMatch(t *testing.T) {
	snapshot := []*models.Asset{
		existing("rec-1", "", "", ""),
	}
	candidates := []*models.Asset{
		{Name: "", Hostname: "", IPAddress: ""},
	}

	matches, unmatched := Reconcile(candidates, snapshot)

	assert.Empty(t, matches)
	assert.Len(t, unmatched, 1)
}

func TestReconcileMultipleMatchesStoreOrder(t *testing.T) {
	snapshot := []*models.Asset{
		existing("rec-1", "Primary", "shared.local", ""),
		existing("rec-2", "Secondary", "", "10.0.0.9"),
		existing("rec-3", "Tertiary", "other.local", ""),
	}
	// Matches rec-2 by address and rec-1 by hostname; report keeps the
	// snapshot order.
	candidate := &models.Asset{Hostname: "shared.local", IPAddress: "10.0.0.9"}

	matches, _ := Reconcile([]*models.Asset{candidate}, snapshot)

	require.Len(t, matches, 1)
	assert.Equal(t, []string{"rec-1", "rec-2"}, matches[0].ExistingIDs)
}

func TestReconcileDeduplicatesIDs(t *testing.T) {
	snapshot := []*models.Asset{
		existing("rec-1", "Server One", "host1.local", "10.0.0.1"),
	}
	// All three hints match the same record; it is reported once.
	candidate := &models.Asset{Name: "Server One", Hostname: "host1.local", IPAddress: "10.0.0.1"}

	matches, _ := Reconcile([]*models.Asset{candidate}, snapshot)

	require.Len(t, matches, 1)
	assert.Equal(t, []string{"rec-1"}, matches[0].ExistingIDs)
}

func TestIndexReuse(t *testing.T) {
	ix := NewIndex([]*models.Asset{
		existing("rec-1", "A", "host1.local", ""),
	})

	assert.Equal(t, []string{"rec-1"}, ix.Match(&models.Asset{Hostname: "host1.local"}))
	assert.Nil(t, ix.Match(&models.Asset{Hostname: "host2.local"}))
}
