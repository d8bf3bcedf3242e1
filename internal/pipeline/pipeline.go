package pipeline

import (
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/hgb-basel/lineage/internal/address"
	"github.com/hgb-basel/lineage/internal/cluster"
	"github.com/hgb-basel/lineage/internal/corrections"
	"github.com/hgb-basel/lineage/internal/dossier"
	"github.com/hgb-basel/lineage/internal/relation"
	"github.com/hgb-basel/lineage/internal/store"
)

// Inputs holds everything a run consumes, read once at the boundary.
type Inputs struct {
	Dossiers           []store.DossierRow
	EntryYears         map[string][]int
	Types              map[string]dossier.Type
	NumberCorrections  []corrections.NumberCorrection
	AddressCorrections []corrections.AddressCorrection
}

// Config carries the injectable knobs of a run.
type Config struct {
	// PartOfOverrides replaces the built-in per-dossier exceptions when
	// non-nil.
	PartOfOverrides address.Overrides

	// RunID overrides the generated run identifier (for testing).
	RunID string
}

// Result is the materialized outcome of one run.
type Result struct {
	RunID     string
	Dossiers  []*dossier.Dossier
	Relations []dossier.Relation
	Stats     Stats
}

// Run executes the full pipeline over the given inputs. It never fails:
// parse misses and ambiguous matches degrade to review notes on the
// affected dossiers.
func Run(in Inputs, cfg Config) *Result {
	runID := cfg.RunID
	if runID == "" {
		runID = uuid.Must(uuid.NewV7()).String()
	}
	overrides := cfg.PartOfOverrides
	if overrides == nil {
		overrides = address.DefaultOverrides()
	}

	slog.Info("pipeline starting", "run", runID, "dossiers", len(in.Dossiers))

	tbl := buildTable(in)
	corrections.ApplyNumbers(tbl, in.NumberCorrections)
	for _, d := range tbl.All() {
		address.ApplyPartOf(d, overrides)
		if d.Leftover != "" {
			d.AppendPostprocessing("Not (all) content of title automatically processed. ")
		}
	}
	corrections.ApplyAddresses(tbl, in.AddressCorrections)

	rels := relation.NewSet()

	groups := cluster.Build(tbl)
	for _, g := range groups {
		relation.DetectTriple(g.Members, rels)
	}
	slog.Debug("clustering done", "groups", len(groups), "triple_edges", rels.Len())

	cluster.MergeAdditionalAddresses(tbl, in.AddressCorrections)

	extractAllNotes(tbl, rels)

	cluster.AssignIDs(tbl, rels)
	cluster.DeriveTypeRelations(tbl, in.EntryYears, rels)

	res := &Result{
		RunID:     runID,
		Dossiers:  tbl.All(),
		Relations: rels.Deduped(),
	}
	res.Stats = summarize(res)
	res.Stats.Log()
	return res
}

// buildTable parses every title into a fresh dossier table. Titles and
// notes are NFC-normalized so OCR-decomposed umlauts compare equal
// everywhere downstream.
func buildTable(in Inputs) *dossier.Table {
	rows := make([]*dossier.Dossier, 0, len(in.Dossiers))
	for _, r := range in.Dossiers {
		parsed := address.Parse(r.Title)
		note := norm.NFC.String(r.DescriptiveNote)
		rows = append(rows, &dossier.Dossier{
			ID:              r.ID,
			Title:           norm.NFC.String(r.Title),
			DescriptiveNote: note,
			Street:          parsed.Street,
			Numbers:         parsed.Numbers,
			Leftover:        parsed.Leftover,
			Type:            in.Types[r.ID],
			OutsideMatch:    note,
		})
	}
	return dossier.NewTable(rows)
}

// extractAllNotes runs the note extractor for every dossier against its
// street siblings.
func extractAllNotes(tbl *dossier.Table, rels *relation.Set) {
	siblings := make(map[string][]*dossier.Dossier)
	for _, street := range tbl.Streets() {
		siblings[street] = tbl.ByStreet(street)
	}
	for _, d := range tbl.All() {
		relation.ExtractNotes(d, siblings[d.Street], rels)
	}
}
