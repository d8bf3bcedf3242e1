package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hgb-basel/lineage/internal/dossier"
)

// InsertDossier inserts a source dossier row.
// Uses ON CONFLICT DO NOTHING for idempotency.
func (s *Store) InsertDossier(ctx context.Context, row DossierRow) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stabs_dossier (dossier_id, title, descriptive_note)
		VALUES (?, ?, ?)
		ON CONFLICT(dossier_id) DO NOTHING
	`, row.ID, row.Title, row.DescriptiveNote)
	if err != nil {
		return fmt.Errorf("insert dossier: %w", err)
	}
	return nil
}

// InsertEntry inserts a source entry row. year < 0 stores NULL.
func (s *Store) InsertEntry(ctx context.Context, entryID, dossierID string, year int) error {
	var y any
	if year >= 0 {
		y = year
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO project_entry (entry_id, dossier_id, year)
		VALUES (?, ?, ?)
		ON CONFLICT(entry_id) DO NOTHING
	`, entryID, dossierID, y)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// WriteResults materializes the three result tables for one run in a
// single transaction. Duplicate writes of the same run are ignored.
func (s *Store) WriteResults(ctx context.Context, runID string, dossiers []*dossier.Dossier, relations []dossier.Relation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin results transaction: %w", err)
	}
	defer tx.Rollback()

	for _, d := range dossiers {
		numbers, err := marshalStrings(d.Numbers)
		if err != nil {
			return err
		}
		partOf, err := marshalStrings(d.NumberPartOf)
		if err != nil {
			return err
		}
		connected, err := marshalStrings(d.Connected)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO dossier_result
			(run_id, dossier_id, title, descriptive_note, street, numbers,
			 number_part_of, connected, cluster_id, cluster_size,
			 cluster_relations, type, note, note_postprocessing)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, runID, d.ID, d.Title, d.DescriptiveNote, d.Street, numbers,
			partOf, connected, d.ClusterID, d.ClusterSize,
			d.ClusterRelations, string(d.Type), d.Note, d.PostprocessingNote)
		if err != nil {
			return fmt.Errorf("write dossier result %s: %w", d.ID, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO cluster (run_id, dossier_id, cluster_id)
			VALUES (?, ?, ?)
			ON CONFLICT DO NOTHING
		`, runID, d.ID, d.ClusterID)
		if err != nil {
			return fmt.Errorf("write cluster row %s: %w", d.ID, err)
		}
	}

	for _, r := range relations {
		origin, err := marshalStrings(r.Origin)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO relation (run_id, source_dossier_id, target_dossier_id, origin)
			VALUES (?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, runID, r.Source, r.Target, origin)
		if err != nil {
			return fmt.Errorf("write relation %s->%s: %w", r.Source, r.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit results: %w", err)
	}
	return nil
}

// marshalStrings serializes a string slice as a JSON array, never null.
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}
