package address

import (
	"regexp"
	"strings"

	"github.com/hgb-basel/lineage/internal/dossier"
)

var (
	// "Th. v. 20 neben 18": a fractional lot of 20 adjacent to 18.
	partOfNextToRe = regexp.MustCompile(
		`^(?:Theil |Th\. |Th |T\. |Tv\. )(?:von |v\. )?(?P<partof>[0-9]+)(?: neben | n\. )(?P<nextto>[0-9]+)(?P<postfix>.*)$`)

	// "Th. v. 20" with optional lowercase suffix ("20a").
	partOfPlainRe = regexp.MustCompile(
		`^(?:Theil |Th\. |Th |T\. |Tv\. )(?:von |v\. )?(?P<partof>[0-9]+a?)(?P<postfix>.*)$`)

	// Part-of marker anywhere in the remainder, as a last resort.
	partOfAnywhereRe = regexp.MustCompile(
		`(?:Theil |Th\. |Th |T\. |Tv\. )(?:von |v\. )?(?P<partof>[0-9]+)`)
)

// ApplyPartOf marks d as a fractional ("part of") lot when its title
// matches the part-of grammar. It runs after manual number corrections
// because a part-of token is only accepted when it is a member of the
// dossier's number set.
//
// Overrides short-circuit the grammar for hand-verified dossiers. Dossiers
// without numbers are skipped.
func ApplyPartOf(d *dossier.Dossier, overrides Overrides) {
	if !d.HasNumbers() {
		return
	}
	if tokens, ok := overrides[d.ID]; ok {
		d.NumberPartOf = append([]string(nil), tokens...)
		return
	}

	rest := strings.TrimLeft(strings.Replace(d.Title, d.Street, "", 1), " \t")

	if m := partOfNextToRe.FindStringSubmatch(rest); m != nil {
		partof := m[partOfNextToRe.SubexpIndex("partof")]
		if d.ContainsNumber(partof) {
			d.NumberPartOf = []string{partof}
			d.NextTo = m[partOfNextToRe.SubexpIndex("nextto")]
			d.Leftover = m[partOfNextToRe.SubexpIndex("postfix")]
			return
		}
	}

	if m := partOfPlainRe.FindStringSubmatch(rest); m != nil {
		partof := m[partOfPlainRe.SubexpIndex("partof")]
		if d.ContainsNumber(partof) {
			d.NumberPartOf = []string{partof}
			d.Leftover = m[partOfPlainRe.SubexpIndex("postfix")]
			return
		}
	}

	if m := partOfAnywhereRe.FindStringSubmatch(rest); m != nil {
		partof := m[partOfAnywhereRe.SubexpIndex("partof")]
		if d.ContainsNumber(partof) {
			d.NumberPartOf = []string{partof}
		}
	}
}
