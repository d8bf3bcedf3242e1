// Package corrections applies manually curated overlays to parsed dossier
// data.
//
// Two correction sources exist. The house-number table fixes numbers the
// grammar got wrong ("-" clears a number, comma lists split). The address
// intermediate table adds review remarks, further number fixes and
// additional cross-addresses that later force-merge otherwise separate
// clusters.
//
// The correction workbooks are treated as plain tabular input: rows are
// looked up by column name, nothing else about the spreadsheet format
// matters. Corrections referencing unknown dossier ids are logged and
// skipped; a bad row never aborts the run.
package corrections
