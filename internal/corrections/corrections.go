package corrections

import (
	"log/slog"
	"strings"

	"github.com/hgb-basel/lineage/internal/dossier"
)

// NumberCorrection overrides the house numbers of one dossier.
// A Number of "-" clears the parsed numbers entirely.
type NumberCorrection struct {
	DossierID string
	Number    string
}

// AddressCorrection is one row of the address intermediate table.
// HouseNumber may be a number override, the literal marker
// "no housenumber available", or empty (row carries only remarks).
// AdditionalAddress lists extra "Street N" addresses, comma-separated,
// used to merge clusters across streets.
type AddressCorrection struct {
	DossierID         string
	HouseNumber       string
	Remark            string
	AdditionalAddress string
}

// NoHouseNumber is the marker value used in the address intermediate table
// for dossiers verified to have no 1862 house number.
const NoHouseNumber = "no housenumber available"

// ApplyNumbers overlays manually corrected house numbers onto the table.
// Rows referencing unknown dossiers are logged and skipped.
func ApplyNumbers(tbl *dossier.Table, corrections []NumberCorrection) {
	for _, c := range corrections {
		d := tbl.Get(c.DossierID)
		if d == nil {
			slog.Warn("number correction references unknown dossier", "dossier", c.DossierID)
			continue
		}
		switch {
		case c.Number == "-":
			d.Numbers = nil
		case strings.Contains(c.Number, ", "):
			d.Numbers = strings.Split(c.Number, ", ")
		default:
			d.Numbers = []string{c.Number}
		}
	}
}

// ApplyAddresses overlays the address intermediate table. Number overrides
// follow the same rules as ApplyNumbers; the no-housenumber marker only
// adds a postprocessing note; rows remarked "additional structure" describe
// lots the pipeline cannot model and are skipped. AdditionalAddress values
// are not consumed here, they feed the cluster merge pass.
func ApplyAddresses(tbl *dossier.Table, corrections []AddressCorrection) {
	for _, c := range corrections {
		if c.HouseNumber == "" {
			continue
		}
		d := tbl.Get(c.DossierID)
		if d == nil {
			slog.Warn("address correction references unknown dossier", "dossier", c.DossierID)
			continue
		}
		switch {
		case c.Remark == "additional structure":
			continue
		case c.HouseNumber == NoHouseNumber:
			d.AppendPostprocessing("No house number available. ")
		case strings.Contains(c.HouseNumber, ", "):
			d.Numbers = strings.Split(c.HouseNumber, ", ")
		default:
			d.Numbers = []string{c.HouseNumber}
		}
	}
}
