package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgb-basel/lineage/internal/dossier"
)

func noted(id, note string) *dossier.Dossier {
	return &dossier.Dossier{ID: id, DescriptiveNote: note}
}

func TestDetectTriple_TwoUntilOneSince(t *testing.T) {
	members := []*dossier.Dossier{
		noted("a", "Bis 1700."),
		noted("b", "Bis 1700. Nachher 21."),
		noted("c", "Seit 1700."),
	}
	rels := NewSet()

	DetectTriple(members, rels)

	require.Equal(t, 2, rels.Len())
	assert.True(t, rels.Contains("a", "c"))
	assert.True(t, rels.Contains("b", "c"))
	for _, r := range rels.Deduped() {
		assert.Equal(t, []string{"a", "b", "c"}, r.Origin)
	}
	for _, d := range members {
		assert.Equal(t, "Relation found on triple. ", d.Note)
	}
}

func TestDetectTriple_OneUntilTwoSince(t *testing.T) {
	members := []*dossier.Dossier{
		noted("a", "Bis 1846."),
		noted("b", "Seit 1846."),
		noted("c", "Seit 1846."),
	}
	rels := NewSet()

	DetectTriple(members, rels)

	require.Equal(t, 2, rels.Len())
	assert.True(t, rels.Contains("a", "b"))
	assert.True(t, rels.Contains("a", "c"))
}

func TestDetectTriple_NoEdges(t *testing.T) {
	testCases := []struct {
		name  string
		notes []string
	}{
		{name: "mixed years", notes: []string{"Bis 1700.", "Bis 1701.", "Seit 1700."}},
		{name: "prefix missing", notes: []string{"Bis 1700.", "Umbau 1700.", "Seit 1700."}},
		{name: "all until", notes: []string{"Bis 1700.", "Bis 1700.", "Bis 1700."}},
		{name: "all since", notes: []string{"Seit 1700.", "Seit 1700.", "Seit 1700."}},
		{name: "empty note", notes: []string{"Bis 1700.", "", "Seit 1700."}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			members := []*dossier.Dossier{
				noted("a", tc.notes[0]),
				noted("b", tc.notes[1]),
				noted("c", tc.notes[2]),
			}
			rels := NewSet()

			DetectTriple(members, rels)

			assert.Zero(t, rels.Len())
			for _, d := range members {
				assert.Empty(t, d.Note)
			}
		})
	}
}

func TestDetectTriple_RequiresExactlyThree(t *testing.T) {
	members := []*dossier.Dossier{
		noted("a", "Bis 1700."),
		noted("b", "Seit 1700."),
	}
	rels := NewSet()

	DetectTriple(members, rels)

	assert.Zero(t, rels.Len())
}
