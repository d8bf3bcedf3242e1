package cluster

import (
	"slices"
	"sort"

	"github.com/hgb-basel/lineage/internal/dossier"
)

// Group is the closed set of dossiers reachable from one house number on
// one street. Groups of exactly three members feed the triple relation
// heuristic; larger groups only contribute cluster membership.
type Group struct {
	Street  string
	Number  string
	Members []*dossier.Dossier
}

// Build computes cluster membership for every street and writes the result
// back as Connected on each member. Membership is symmetric and
// transitively closed; groups of size one are not materialized (Connected
// stays empty).
//
// The returned groups, one per (street, number) seed, preserve discovery
// order and include singleton groups for the caller to filter.
func Build(tbl *dossier.Table) []Group {
	var groups []Group
	for _, street := range tbl.Streets() {
		groups = append(groups, buildStreet(tbl, street)...)
	}
	return groups
}

// buildStreet runs the closure for one street.
//
// For each number n the seed set is every dossier listing n. The frontier
// holds every number any seed member lists; dossiers referencing a frontier
// number are pulled in and their numbers extend the frontier, until a full
// pass adds nothing. The loop terminates because the number universe of a
// street is finite and each pass only adds unseen dossiers.
func buildStreet(tbl *dossier.Table, street string) []Group {
	var members []*dossier.Dossier
	index := make(map[string][]*dossier.Dossier)
	for _, d := range tbl.ByStreet(street) {
		if !d.HasNumbers() {
			continue
		}
		members = append(members, d)
		for _, n := range d.Numbers {
			index[n] = append(index[n], d)
		}
	}

	numbers := make([]string, 0, len(index))
	for n := range index {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)

	var groups []Group
	for _, n := range numbers {
		group := closure(index, n)
		if len(group) > 1 {
			ids := make([]string, len(group))
			for i, d := range group {
				ids[i] = d.ID
			}
			for _, d := range group {
				d.Connected = ids
			}
		}
		groups = append(groups, Group{Street: street, Number: n, Members: group})
	}
	return groups
}

// closure expands the seed set for number n to the full connected group.
func closure(index map[string][]*dossier.Dossier, n string) []*dossier.Dossier {
	group := slices.Clone(index[n])
	inGroup := make(map[string]bool, len(group))
	frontier := []string{}
	for _, d := range group {
		inGroup[d.ID] = true
		for _, num := range d.Numbers {
			if !slices.Contains(frontier, num) {
				frontier = append(frontier, num)
			}
		}
	}
	if len(frontier) < 2 {
		return group
	}

	added := true
	for added {
		added = false
		for i := 0; i < len(frontier); i++ {
			for _, d := range index[frontier[i]] {
				if inGroup[d.ID] {
					continue
				}
				inGroup[d.ID] = true
				group = append(group, d)
				for _, num := range d.Numbers {
					if !slices.Contains(frontier, num) {
						frontier = append(frontier, num)
						added = true
					}
				}
			}
		}
	}
	return group
}
