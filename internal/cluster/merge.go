package cluster

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/hgb-basel/lineage/internal/corrections"
	"github.com/hgb-basel/lineage/internal/dossier"
)

// Additional addresses are plain "Street N" strings.
var additionalAddressRe = regexp.MustCompile(
	`^(?P<street>[a-zA-Zäöü.\-\s]*[a-zA-Zäöü]+) (?P<number>[0-9]+)$`)

// MergeAdditionalAddresses unions clusters across streets based on the
// manually curated additional addresses. For each address the dossier it
// resolves to and the correction's own dossier, plus both of their
// clusters, become one cluster; the unioned membership is propagated to
// every member.
//
// This pass must run after all per-street clustering: it is the only place
// where clusters cross street boundaries. Addresses that resolve to no
// dossier are logged and skipped.
func MergeAdditionalAddresses(tbl *dossier.Table, addrCorrections []corrections.AddressCorrection) {
	for _, c := range addrCorrections {
		if c.AdditionalAddress == "" {
			continue
		}
		for _, addr := range strings.Split(c.AdditionalAddress, ", ") {
			mergeOne(tbl, c.DossierID, norm.NFC.String(addr))
		}
	}
}

func mergeOne(tbl *dossier.Table, dossierID, addr string) {
	m := additionalAddressRe.FindStringSubmatch(addr)
	if m == nil {
		slog.Warn("additional address does not match street-number form",
			"dossier", dossierID, "address", addr)
		return
	}
	street := m[additionalAddressRe.SubexpIndex("street")]
	number := m[additionalAddressRe.SubexpIndex("number")]

	var match *dossier.Dossier
	for _, d := range tbl.ByStreet(street) {
		if n, ok := d.SingleNumber(); ok && n == number {
			match = d
			break
		}
	}
	if match == nil {
		slog.Warn("no dossier found for additional address",
			"dossier", dossierID, "address", addr)
		return
	}
	source := tbl.Get(dossierID)
	if source == nil {
		slog.Warn("additional address references unknown dossier", "dossier", dossierID)
		return
	}

	// Union both clusters plus the two endpoints, first-seen order.
	var union []string
	combined := make([]string, 0, len(source.Connected)+len(match.Connected)+2)
	combined = append(combined, source.Connected...)
	combined = append(combined, match.Connected...)
	combined = append(combined, source.ID, match.ID)
	for _, id := range combined {
		if !slices.Contains(union, id) {
			union = append(union, id)
		}
	}

	for _, id := range union {
		if d := tbl.Get(id); d != nil {
			d.Connected = union
			d.AppendNote("Cluster enlarged based on additional address. ")
		}
	}
}
