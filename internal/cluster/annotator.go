package cluster

import (
	"sort"
	"strings"

	"github.com/hgb-basel/lineage/internal/dossier"
	"github.com/hgb-basel/lineage/internal/relation"
)

// AssignIDs numbers every distinct cluster and stamps id, size and the
// count of deduplicated relations touching any member onto each member.
//
// Numbering is first-seen-wins over table iteration order, starting at 1;
// it is therefore stable for identical input order only. Id 0 means the
// dossier is not part of a materialized cluster.
func AssignIDs(tbl *dossier.Table, rels *relation.Set) {
	seen := make(map[string]int)
	next := 1
	for _, d := range tbl.All() {
		if len(d.Connected) == 0 {
			continue
		}
		key := strings.Join(d.Connected, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = next
		count := rels.CountTouching(d.Connected)
		for _, id := range d.Connected {
			if member := tbl.Get(id); member != nil {
				member.ClusterID = next
				member.ClusterSize = len(d.Connected)
				member.ClusterRelations = count
			}
		}
		next++
	}
}

// DeriveTypeRelations infers union/split relations for clusters of exactly
// three members from the external type classification and the median entry
// year per dossier.
//
// Two compositions are recognized. {2 partOf, 1 unchanged}: when the
// unchanged dossier's median year lies after both partOf medians the parts
// were united into it, when it lies before both the lot was split into the
// parts. {2 unchanged, 1 joined} follows the same logic with the joined
// dossier playing the merged role. Equal medians produce no inference, and
// a member without entry years disqualifies its cluster.
//
// Derived edges are added only when absent from the deduplicated relation
// set; each addition bumps the members' relation count and appends an
// audit note.
func DeriveTypeRelations(tbl *dossier.Table, years map[string][]int, rels *relation.Set) {
	clusters := make(map[int][]*dossier.Dossier)
	var order []int
	for _, d := range tbl.All() {
		if d.ClusterID == 0 {
			continue
		}
		if _, ok := clusters[d.ClusterID]; !ok {
			order = append(order, d.ClusterID)
		}
		clusters[d.ClusterID] = append(clusters[d.ClusterID], d)
	}
	sort.Ints(order)

	for _, id := range order {
		members := clusters[id]
		if len(members) != 3 {
			continue
		}
		deriveForTriple(members, years, rels)
	}
}

func deriveForTriple(members []*dossier.Dossier, years map[string][]int, rels *relation.Set) {
	medians := make(map[string]float64, 3)
	for _, d := range members {
		ys := years[d.ID]
		if len(ys) == 0 {
			// No entries, no median: conservative skip.
			return
		}
		medians[d.ID] = medianYear(ys)
	}

	byType := make(map[dossier.Type][]*dossier.Dossier)
	for _, d := range members {
		byType[d.Type] = append(byType[d.Type], d)
	}

	var single *dossier.Dossier
	var pair []*dossier.Dossier
	switch {
	case len(byType[dossier.TypePartOf]) == 2 && len(byType[dossier.TypeUnchanged]) == 1:
		single = byType[dossier.TypeUnchanged][0]
		pair = byType[dossier.TypePartOf]
	case len(byType[dossier.TypeUnchanged]) == 2 && len(byType[dossier.TypeJoined]) == 1:
		single = byType[dossier.TypeJoined][0]
		pair = byType[dossier.TypeUnchanged]
	default:
		return
	}

	origin := []string{members[0].ID, members[1].ID, members[2].ID}
	var candidates []dossier.Relation
	switch {
	case medians[single.ID] > medians[pair[0].ID] && medians[single.ID] > medians[pair[1].ID]:
		// The merged-role dossier starts after both parts: union.
		candidates = []dossier.Relation{
			{Origin: origin, Source: pair[0].ID, Target: single.ID},
			{Origin: origin, Source: pair[1].ID, Target: single.ID},
		}
	case medians[single.ID] < medians[pair[0].ID] && medians[single.ID] < medians[pair[1].ID]:
		// The merged-role dossier ends before both parts: split.
		candidates = []dossier.Relation{
			{Origin: origin, Source: single.ID, Target: pair[0].ID},
			{Origin: origin, Source: single.ID, Target: pair[1].ID},
		}
	default:
		// Median on or between the pair's medians: no inference on tie.
		return
	}

	added := 0
	for _, r := range candidates {
		if rels.AddUnique(r) {
			added++
		}
	}
	if added == 0 {
		return
	}
	for _, d := range members {
		d.ClusterRelations += added
		d.AppendNote("Relation found on cluster. ")
	}
}

// medianYear returns the statistical median: the middle year for odd
// counts, the mean of the two middle years for even counts.
func medianYear(years []int) float64 {
	sorted := make([]int, len(years))
	copy(sorted, years)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
