// Package pipeline wires the lineage stages into one synchronous batch
// run.
//
// Stages run leaves-first over an in-memory dossier table: title parsing,
// manual correction overlays, per-street clustering, the triple heuristic,
// cross-street cluster merges, note-based relation extraction, and finally
// cluster annotation with the type/median-year derivation. All I/O happens
// at the boundary; the stages themselves never block.
package pipeline
