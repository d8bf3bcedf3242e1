package pipeline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgb-basel/lineage/internal/corrections"
	"github.com/hgb-basel/lineage/internal/dossier"
	"github.com/hgb-basel/lineage/internal/store"
)

// fixtureInputs covers one documented renumbering (Eisengasse), a united
// plot referenced from both sides (Rheingasse) and a type-derived union
// (Spalenberg).
func fixtureInputs() Inputs {
	return Inputs{
		Dossiers: []store.DossierRow{
			{ID: "E1", Title: "Eisengasse 21", DescriptiveNote: "Bis 1700."},
			{ID: "E2", Title: "Eisengasse 21", DescriptiveNote: "Bis 1700."},
			{ID: "E3", Title: "Eisengasse 21", DescriptiveNote: "Seit 1700."},
			{ID: "R0", Title: "Rheingasse 7"},
			{ID: "R1", Title: "Rheingasse 5", DescriptiveNote: "Nachher siehe 7, 9 vereinigt."},
			{ID: "R2", Title: "Rheingasse 7, 9", DescriptiveNote: "Seit 1750. Vorher siehe 5."},
			{ID: "S1", Title: "Spalenberg 2"},
			{ID: "S2", Title: "Spalenberg 4"},
			{ID: "S3", Title: "Spalenberg 2, 4"},
		},
		EntryYears: map[string][]int{
			"S1": {1700, 1710},
			"S2": {1712},
			"S3": {1800, 1810, 1820},
		},
		Types: map[string]dossier.Type{
			"S1": dossier.TypePartOf,
			"S2": dossier.TypePartOf,
			"S3": dossier.TypeUnchanged,
		},
	}
}

// render writes a run result in a stable line format for golden
// comparison.
func render(res *Result) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "run: %s\n", res.RunID)
	s := res.Stats
	fmt.Fprintf(&b, "stats: dossiers=%d relations=%d sources=%d targets=%d clusters=%d flagged=%d\n",
		s.Dossiers, s.Relations, s.DistinctSources, s.DistinctTargets, s.Clusters, s.FlaggedForReview)

	b.WriteString("\nrelations:\n")
	for _, r := range res.Relations {
		fmt.Fprintf(&b, "  %s -> %s (origin %s)\n", r.Source, r.Target, strings.Join(r.Origin, "+"))
	}

	b.WriteString("\ndossiers:\n")
	for _, d := range res.Dossiers {
		fmt.Fprintf(&b, "  %s street=%s numbers=%s cluster=%d/%d/%d type=%s note=%q post=%q\n",
			d.ID, d.Street, strings.Join(d.Numbers, "+"),
			d.ClusterID, d.ClusterSize, d.ClusterRelations,
			d.Type, d.Note, d.PostprocessingNote)
	}
	return []byte(b.String())
}

func TestRun_Golden(t *testing.T) {
	res := Run(fixtureInputs(), Config{RunID: "fixture-run"})

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "fixture_run", render(res))
}

func TestRun_CrossStageDedup(t *testing.T) {
	// R1's "vereinigt" statement and R2's "Vorher" statement assert the
	// same succession; only one edge survives.
	res := Run(fixtureInputs(), Config{RunID: "t"})

	seen := 0
	for _, r := range res.Relations {
		if r.Source == "R1" && r.Target == "R2" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestRun_Idempotent(t *testing.T) {
	first := Run(fixtureInputs(), Config{RunID: "t"})
	second := Run(fixtureInputs(), Config{RunID: "t"})

	assert.Equal(t, render(first), render(second))
}

func TestRun_GeneratesRunID(t *testing.T) {
	res := Run(Inputs{}, Config{})

	assert.NotEmpty(t, res.RunID)
	assert.Zero(t, res.Stats.Dossiers)
}

func TestRun_LeftoverTitleFlagged(t *testing.T) {
	res := Run(Inputs{
		Dossiers: []store.DossierRow{
			{ID: "Q1", Title: "Eisengasse Bank vor 26"},
		},
	}, Config{RunID: "t"})

	require.Len(t, res.Dossiers, 1)
	d := res.Dossiers[0]
	assert.Equal(t, "Eisengasse", d.Street)
	assert.Empty(t, d.Numbers)
	assert.Equal(t, "Not (all) content of title automatically processed. ", d.PostprocessingNote)
	assert.Equal(t, 1, res.Stats.FlaggedForReview)
}

func TestRun_NumberCorrectionFeedsClustering(t *testing.T) {
	// The corrected number 21 puts B into A's cluster despite its title.
	res := Run(Inputs{
		Dossiers: []store.DossierRow{
			{ID: "A", Title: "Eisengasse 21"},
			{ID: "B", Title: "Eisengasse 99"},
		},
		NumberCorrections: []corrections.NumberCorrection{
			{DossierID: "B", Number: "21"},
		},
	}, Config{RunID: "t"})

	require.Len(t, res.Dossiers, 2)
	assert.Equal(t, res.Dossiers[0].ClusterID, res.Dossiers[1].ClusterID)
	assert.NotZero(t, res.Dossiers[0].ClusterID)
}

func TestRun_AdditionalAddressMergesAcrossStreets(t *testing.T) {
	res := Run(Inputs{
		Dossiers: []store.DossierRow{
			{ID: "A", Title: "Eisengasse 21"},
			{ID: "B", Title: "Eisengasse 21"},
			{ID: "C", Title: "Rheingasse 5"},
		},
		AddressCorrections: []corrections.AddressCorrection{
			{DossierID: "C", HouseNumber: "5", AdditionalAddress: "Eisengasse 21"},
		},
	}, Config{RunID: "t"})

	byID := make(map[string]*dossier.Dossier)
	for _, d := range res.Dossiers {
		byID[d.ID] = d
	}
	require.NotZero(t, byID["C"].ClusterID)
	assert.Equal(t, byID["A"].ClusterID, byID["C"].ClusterID)
	assert.Equal(t, 3, byID["C"].ClusterSize)
}
