package corrections

import (
	"encoding/csv"
	"fmt"
	"os"
)

// LoadDossierFilter reads the CSV listing the dossier ids in scope for a
// run. Only the dossierId column is consumed; further columns are
// passthrough output of earlier analysis runs and ignored here.
func LoadDossierFilter(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dossier filter: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dossier filter %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dossier filter %s: missing header row", path)
	}

	idCol := -1
	for i, name := range records[0] {
		if name == colDossierID {
			idCol = i
			break
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("dossier filter %s: no %q column", path, colDossierID)
	}

	var ids []string
	for _, record := range records[1:] {
		if idCol < len(record) && record[idCol] != "" {
			ids = append(ids, record[idCol])
		}
	}
	return ids, nil
}
