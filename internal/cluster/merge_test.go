package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hgb-basel/lineage/internal/corrections"
	"github.com/hgb-basel/lineage/internal/dossier"
)

func TestMergeAdditionalAddresses_UnionsAcrossStreets(t *testing.T) {
	a := row("a", "Eisengasse", "21")
	b := row("b", "Eisengasse", "21")
	c := row("c", "Rheingasse", "5")
	tbl := dossier.NewTable([]*dossier.Dossier{a, b, c})
	Build(tbl)

	MergeAdditionalAddresses(tbl, []corrections.AddressCorrection{
		{DossierID: "c", AdditionalAddress: "Eisengasse 21"},
	})

	want := []string{"c", "a", "b"}
	for _, d := range []*dossier.Dossier{a, b, c} {
		assert.ElementsMatch(t, want, d.Connected)
		assert.Equal(t, "Cluster enlarged based on additional address. ", d.Note)
	}
}

func TestMergeAdditionalAddresses_MultipleAddresses(t *testing.T) {
	a := row("a", "Eisengasse", "21")
	b := row("b", "Rheingasse", "5")
	c := row("c", "Spalenberg", "2")
	tbl := dossier.NewTable([]*dossier.Dossier{a, b, c})
	Build(tbl)

	MergeAdditionalAddresses(tbl, []corrections.AddressCorrection{
		{DossierID: "a", AdditionalAddress: "Rheingasse 5, Spalenberg 2"},
	})

	assert.ElementsMatch(t, []string{"a", "b", "c"}, a.Connected)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, c.Connected)
}

func TestMergeAdditionalAddresses_RequiresScalarNumberMatch(t *testing.T) {
	// "Eisengasse 21" must resolve to a dossier whose sole number is 21;
	// a combined lot listing 21 does not qualify.
	a := row("a", "Eisengasse", "21", "23")
	b := row("b", "Rheingasse", "5")
	tbl := dossier.NewTable([]*dossier.Dossier{a, b})
	Build(tbl)

	MergeAdditionalAddresses(tbl, []corrections.AddressCorrection{
		{DossierID: "b", AdditionalAddress: "Eisengasse 21"},
	})

	assert.Empty(t, b.Connected)
	assert.Empty(t, b.Note)
}

func TestMergeAdditionalAddresses_UnresolvableAddressSkipped(t *testing.T) {
	a := row("a", "Eisengasse", "21")
	tbl := dossier.NewTable([]*dossier.Dossier{a})
	Build(tbl)

	MergeAdditionalAddresses(tbl, []corrections.AddressCorrection{
		{DossierID: "a", AdditionalAddress: "Totengässlein 99"},
		{DossierID: "a", AdditionalAddress: "not an address"},
	})

	assert.Empty(t, a.Connected)
}
