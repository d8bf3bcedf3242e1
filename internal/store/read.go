package store

import (
	"context"
	"database/sql"
	"fmt"
)

// DossierRow is one row of the stabs_dossier source table.
type DossierRow struct {
	ID              string
	Title           string
	DescriptiveNote string
}

// ReadDossiers returns all source dossier rows.
// Ordering is deterministic: dossier_id ascending, binary collation.
func (s *Store) ReadDossiers(ctx context.Context) ([]DossierRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT dossier_id, title, descriptive_note
		FROM stabs_dossier
		ORDER BY dossier_id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query dossiers: %w", err)
	}
	defer rows.Close()

	var out []DossierRow
	for rows.Next() {
		var r DossierRow
		if err := rows.Scan(&r.ID, &r.Title, &r.DescriptiveNote); err != nil {
			return nil, fmt.Errorf("scan dossier: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dossiers: %w", err)
	}
	return out, nil
}

// ReadEntryYears returns the entry years grouped by dossier id.
// Entries without a year are skipped; they carry no temporal signal.
func (s *Store) ReadEntryYears(ctx context.Context) (map[string][]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT dossier_id, year
		FROM project_entry
		ORDER BY dossier_id COLLATE BINARY ASC, entry_id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]int)
	for rows.Next() {
		var dossierID string
		var year sql.NullInt64
		if err := rows.Scan(&dossierID, &year); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if year.Valid {
			out[dossierID] = append(out[dossierID], int(year.Int64))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return out, nil
}
