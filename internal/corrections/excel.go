package corrections

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hgb-basel/lineage/internal/dossier"
)

// Column names of the correction workbooks. The names are fixed by the
// source files of the registry project and looked up verbatim.
const (
	colDossierID         = "dossierId"
	colNumberCorrection  = "Korrektur Nummer"
	colHouseNumber       = "House Number"
	colRemarks           = "Remarks"
	colAdditionalAddress = "Additional Address"
	colType              = "type"
)

// LoadNumberCorrections reads the house-number correction workbook.
// Rows with an empty correction cell are ignored.
func LoadNumberCorrections(path string) ([]NumberCorrection, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	var out []NumberCorrection
	for _, row := range rows {
		number := row[colNumberCorrection]
		if number == "" {
			continue
		}
		out = append(out, NumberCorrection{
			DossierID: row[colDossierID],
			Number:    number,
		})
	}
	return out, nil
}

// LoadAddressCorrections reads the address intermediate workbook.
func LoadAddressCorrections(path string) ([]AddressCorrection, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	var out []AddressCorrection
	for _, row := range rows {
		out = append(out, AddressCorrection{
			DossierID:         row[colDossierID],
			HouseNumber:       row[colHouseNumber],
			Remark:            row[colRemarks],
			AdditionalAddress: row[colAdditionalAddress],
		})
	}
	return out, nil
}

// LoadDossierTypes reads the external dossier-type classification workbook
// into an id-to-type map.
func LoadDossierTypes(path string) (map[string]dossier.Type, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]dossier.Type, len(rows))
	for _, row := range rows {
		if id := row[colDossierID]; id != "" {
			out[id] = dossier.Type(row[colType])
		}
	}
	return out, nil
}

// readSheet reads the first sheet of a workbook into one map per data row,
// keyed by the header row values. Short rows yield empty strings for the
// missing trailing columns.
func readSheet(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s: sheet %s has no header row", path, sheet)
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		out = append(out, record)
	}
	return out, nil
}
