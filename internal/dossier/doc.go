// Package dossier provides the core data model for the land-register
// lineage pipeline.
//
// This package contains type definitions and small helpers only. All other
// internal packages import dossier; dossier imports nothing internal, so it
// stays the foundational layer with no circular dependencies.
//
// A Dossier is one property-register folder. Its parsed address fields
// (Street, Numbers, NumberPartOf) are derived from the raw Title; cluster
// fields (Connected, ClusterID, ...) are derived by the pipeline stages.
// Note and PostprocessingNote are append-only audit trails, never
// overwritten.
package dossier
