// Package store provides the SQLite-backed table store for the lineage
// pipeline.
//
// Source tables (dossier metadata from the State Archives and the entry
// years) are read once before the pipeline runs; the three result tables
// (dossier_result, relation, cluster) are written once afterwards, stamped
// with a per-run id so reruns never clobber earlier results.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// All result writes use ON CONFLICT DO NOTHING so re-writing a run is
// idempotent.
package store
