package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ExportCSV writes the three result tables as CSV files into dir, named
// <date>_dossier.csv, <date>_relation.csv and <date>_cluster.csv with the
// current date as YYYYMMDD prefix, matching the naming scheme of the
// registry project's earlier exports.
func ExportCSV(dir string, res *Result) error {
	return exportCSV(dir, time.Now().Format("20060102"), res)
}

func exportCSV(dir, prefix string, res *Result) error {
	dossierRows := [][]string{{
		"dossierId", "title", "descriptiveNote", "street", "numbers",
		"numberPartOf", "connectedDossiers", "clusterId", "clusterSize",
		"clusterRelations", "type", "note", "notePostprocessing",
	}}
	for _, d := range res.Dossiers {
		dossierRows = append(dossierRows, []string{
			d.ID, d.Title, d.DescriptiveNote, d.Street,
			strings.Join(d.Numbers, ", "),
			strings.Join(d.NumberPartOf, ", "),
			strings.Join(d.Connected, ", "),
			strconv.Itoa(d.ClusterID),
			strconv.Itoa(d.ClusterSize),
			strconv.Itoa(d.ClusterRelations),
			string(d.Type), d.Note, d.PostprocessingNote,
		})
	}

	relationRows := [][]string{{"sourceDossierId", "targetDossierId", "origin"}}
	for _, r := range res.Relations {
		relationRows = append(relationRows, []string{
			r.Source, r.Target, strings.Join(r.Origin, ", "),
		})
	}

	clusterRows := [][]string{{"dossierId", "clusterId"}}
	for _, d := range res.Dossiers {
		clusterRows = append(clusterRows, []string{d.ID, strconv.Itoa(d.ClusterID)})
	}

	files := map[string][][]string{
		prefix + "_dossier.csv":  dossierRows,
		prefix + "_relation.csv": relationRows,
		prefix + "_cluster.csv":  clusterRows,
	}
	for name, rows := range files {
		if err := writeCSV(filepath.Join(dir, name), rows); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
