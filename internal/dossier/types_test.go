package dossier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsNumber(t *testing.T) {
	testCases := []struct {
		name    string
		numbers []string
		tok     string
		want    bool
	}{
		{name: "scalar exact", numbers: []string{"10"}, tok: "10", want: true},
		{name: "scalar letter suffix", numbers: []string{"10 A"}, tok: "10", want: true},
		{name: "scalar mismatch", numbers: []string{"12"}, tok: "10", want: false},
		{name: "list exact member", numbers: []string{"10", "12"}, tok: "12", want: true},
		{name: "list no substring match", numbers: []string{"10 A", "12"}, tok: "10", want: false},
		{name: "no numbers", numbers: nil, tok: "10", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := &Dossier{Numbers: tc.numbers}
			assert.Equal(t, tc.want, d.ContainsNumber(tc.tok))
		})
	}
}

func TestSingleNumber(t *testing.T) {
	_, ok := (&Dossier{Numbers: []string{"10", "12"}}).SingleNumber()
	assert.False(t, ok)

	n, ok := (&Dossier{Numbers: []string{"10"}}).SingleNumber()
	assert.True(t, ok)
	assert.Equal(t, "10", n)
}

func TestTable_DuplicateIDsKeepFirst(t *testing.T) {
	tbl := NewTable([]*Dossier{
		{ID: "a", Street: "Eisengasse"},
		{ID: "a", Street: "Rheingasse"},
		{ID: "b", Street: "Rheingasse"},
	})

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Eisengasse", tbl.Get("a").Street)
	assert.Equal(t, []string{"Eisengasse", "Rheingasse"}, tbl.Streets())
}

func TestTable_ByStreetKeepsOrder(t *testing.T) {
	tbl := NewTable([]*Dossier{
		{ID: "a", Street: "Eisengasse"},
		{ID: "b", Street: "Rheingasse"},
		{ID: "c", Street: "Eisengasse"},
	})

	got := tbl.ByStreet("Eisengasse")
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
