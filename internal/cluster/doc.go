// Package cluster groups dossiers that describe the same plot lineage.
//
// Two dossiers belong together when they share a house number on the same
// street, directly or transitively: if A and B share a number and B and C
// share a (possibly different) number, all three form one cluster. The
// builder computes this closure per street; a separate pass merges clusters
// across streets based on manually curated additional addresses.
//
// The annotator assigns stable-within-one-run cluster ids, sizes and
// relation counts, and derives union/split relations for three-member
// clusters from the external type classification and median entry years.
package cluster
