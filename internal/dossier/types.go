package dossier

import (
	"slices"
	"strings"
)

// Type classifies how a dossier's address relates to its 1862 lot.
// The classification is supplied externally per dossier.
type Type string

const (
	TypePartOf          Type = "partOf"
	TypeJoined          Type = "joined"
	TypePartOfAndJoined Type = "partOfAndJoined"
	TypeUnchanged       Type = "unchanged"
)

// Dossier represents one property-register folder.
//
// Numbers holds the house-number tokens parsed from the title. A nil slice
// means no number is known (unparseable title or explicitly cleared by a
// correction). A single-element slice is a scalar number; multi-element
// slices only arise from comma- or slash-separated titles and from manual
// corrections, so length distinguishes a single house from a combined lot.
type Dossier struct {
	ID              string `json:"dossier_id"`
	Title           string `json:"title"`
	DescriptiveNote string `json:"descriptive_note"`

	Street       string   `json:"street"`
	Numbers      []string `json:"numbers,omitempty"`
	NumberPartOf []string `json:"number_part_of,omitempty"`
	NextTo       string   `json:"next_to,omitempty"`
	Leftover     string   `json:"leftover,omitempty"`

	// Connected lists the ids of all dossiers in this dossier's cluster,
	// including this dossier itself. Empty for singleton lots.
	Connected []string `json:"connected,omitempty"`

	ClusterID        int `json:"cluster_id"`
	ClusterSize      int `json:"cluster_size"`
	ClusterRelations int `json:"cluster_relations"`

	Type Type `json:"type,omitempty"`

	// OutsideMatch starts as a copy of DescriptiveNote and shrinks as
	// relation statements are matched and stripped. A non-empty residue
	// after processing flags the note for manual review.
	OutsideMatch string `json:"-"`

	Note               string `json:"note,omitempty"`
	PostprocessingNote string `json:"note_postprocessing,omitempty"`
}

// AppendNote appends an audit remark to the dossier's note trail.
func (d *Dossier) AppendNote(remark string) {
	d.Note += remark
}

// AppendPostprocessing appends a manual-review remark.
func (d *Dossier) AppendPostprocessing(remark string) {
	d.PostprocessingNote += remark
}

// HasNumbers reports whether a house number is known.
func (d *Dossier) HasNumbers() bool {
	return len(d.Numbers) > 0
}

// SingleNumber returns the house number and true when the dossier carries
// exactly one number token.
func (d *Dossier) SingleNumber() (string, bool) {
	if len(d.Numbers) == 1 {
		return d.Numbers[0], true
	}
	return "", false
}

// IsPartOf reports whether the dossier's number denotes a fractional part
// of a larger lot.
func (d *Dossier) IsPartOf() bool {
	return len(d.NumberPartOf) > 0
}

// ContainsNumber reports whether tok counts as a member of the dossier's
// number set. A scalar number matches by substring so that part-of tokens
// still match letter-suffixed numbers ("10" matches "10 A"); lists match
// by exact membership.
func (d *Dossier) ContainsNumber(tok string) bool {
	if len(d.Numbers) == 1 {
		return strings.Contains(d.Numbers[0], tok)
	}
	return slices.Contains(d.Numbers, tok)
}

// Relation is a directed edge asserting that Source temporally precedes
// Target. Origin records the dossier ids whose evidence justified the edge;
// it may contain all three members of a triple.
type Relation struct {
	Origin []string `json:"origin"`
	Source string   `json:"source_dossier_id"`
	Target string   `json:"target_dossier_id"`
}
