// Package relation infers directed predecessor/successor edges between
// dossiers.
//
// Three sources feed the relation set: the triple heuristic over
// three-member number groups with dated "Bis"/"Seit" note prefixes, the
// note extractor for "Vorher/Nachher siehe ..." statements, and the
// cluster annotator's type/median-year derivation (driven from the cluster
// package). The Set owns the working edges and materializes a view
// deduplicated on (source, target).
//
// Inference is deliberately conservative: an edge is emitted only when the
// referenced sibling dossier is unique and unambiguous. Ambiguity produces
// a postprocessing note for manual follow-up, never a guessed edge.
package relation
