package relation

import (
	"slices"

	"github.com/hgb-basel/lineage/internal/dossier"
)

type pair struct {
	source string
	target string
}

// Set accumulates relation edges and maintains the deduplicated view.
// Raw edges keep every origin for audit; the deduplicated view collapses
// edges on (source, target), first occurrence wins.
type Set struct {
	raw     []dossier.Relation
	deduped []dossier.Relation
	index   map[pair]bool
}

// NewSet returns an empty relation set.
func NewSet() *Set {
	return &Set{index: make(map[pair]bool)}
}

// Add records an edge. Duplicate (source, target) pairs are kept in the
// raw log but do not extend the deduplicated view.
func (s *Set) Add(r dossier.Relation) {
	s.raw = append(s.raw, r)
	p := pair{r.Source, r.Target}
	if !s.index[p] {
		s.index[p] = true
		s.deduped = append(s.deduped, r)
	}
}

// AddUnique records an edge only when its (source, target) pair is new.
// It reports whether the edge was added.
func (s *Set) AddUnique(r dossier.Relation) bool {
	if s.index[pair{r.Source, r.Target}] {
		return false
	}
	s.Add(r)
	return true
}

// Contains reports whether the deduplicated view holds the edge.
func (s *Set) Contains(source, target string) bool {
	return s.index[pair{source, target}]
}

// Deduped returns the deduplicated edges in first-occurrence order.
func (s *Set) Deduped() []dossier.Relation {
	return slices.Clone(s.deduped)
}

// Len returns the number of deduplicated edges.
func (s *Set) Len() int { return len(s.deduped) }

// CountTouching returns the number of deduplicated edges with source or
// target in ids.
func (s *Set) CountTouching(ids []string) int {
	count := 0
	for _, r := range s.deduped {
		if slices.Contains(ids, r.Source) || slices.Contains(ids, r.Target) {
			count++
		}
	}
	return count
}
