package relation

import (
	"regexp"

	"github.com/hgb-basel/lineage/internal/dossier"
)

// Dated note prefix: "Bis 1700. ..." or "Seit 1700. ...".
var datedPrefixRe = regexp.MustCompile(`^(Bis|Seit) ([0-9]{4})`)

// DetectTriple inspects a closed (street, number) group of exactly three
// dossiers for a documented renumbering: every member's descriptive note
// must start with "Bis <year>" or "Seit <year>", all three years must
// agree, and the keywords must split the group two against one.
//
// Two edges are emitted, every "Bis" dossier pointing at the lone "Seit"
// dossier or the lone "Bis" dossier pointing at both "Seit" dossiers,
// with all three ids as origin. Groups that are not exactly three members,
// mix years, or split three against zero produce nothing.
func DetectTriple(members []*dossier.Dossier, rels *Set) {
	if len(members) != 3 {
		return
	}

	var until, since []*dossier.Dossier
	year := ""
	for _, d := range members {
		m := datedPrefixRe.FindStringSubmatch(d.DescriptiveNote)
		if m == nil {
			return
		}
		if year == "" {
			year = m[2]
		} else if m[2] != year {
			return
		}
		if m[1] == "Bis" {
			until = append(until, d)
		} else {
			since = append(since, d)
		}
	}

	switch {
	case len(until) == 2:
		origin := []string{until[0].ID, until[1].ID, since[0].ID}
		rels.Add(dossier.Relation{Origin: origin, Source: until[0].ID, Target: since[0].ID})
		rels.Add(dossier.Relation{Origin: origin, Source: until[1].ID, Target: since[0].ID})
	case len(since) == 2:
		origin := []string{until[0].ID, since[0].ID, since[1].ID}
		rels.Add(dossier.Relation{Origin: origin, Source: until[0].ID, Target: since[0].ID})
		rels.Add(dossier.Relation{Origin: origin, Source: until[0].ID, Target: since[1].ID})
	default:
		// All three on the same side of the renumbering: no direction.
		return
	}

	for _, d := range members {
		d.AppendNote("Relation found on triple. ")
	}
}
