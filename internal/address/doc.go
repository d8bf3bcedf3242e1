// Package address implements the grammar for 1862 Basel land-register
// titles.
//
// A title is a street name followed by house numbers, for example
// "Eisengasse 21", "Rheingasse 64, 66" or "Petersgraben Th. v. 20 neben 18".
// The grammar is historically fixed: the synonym sets for "Theil von"
// (part of) and the trailing qualifiers ("vor", "unter", ...) are closed
// lists taken from the source registry, not a general address parser.
//
// Parsing runs in two passes. Parse extracts the street and the number
// list from a raw title. ApplyPartOf runs after manual number corrections
// and marks dossiers whose number denotes a fractional part of a lot; a
// part-of token is only accepted when it is a member of the (corrected)
// number set. Hand-verified per-dossier exceptions are supplied as an
// Overrides map so the pass itself stays purely grammar-driven.
package address
