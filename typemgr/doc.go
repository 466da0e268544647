// Package typemgr implements the type manager collaborator: the
// bidirectional mapping between external type names (node/edge
// element or bond-kind labels) and the compact Type codes graphmodel
// operates on, with an optional fixed/extendable distinction so a
// caller can load a closed type vocabulary from configuration and
// reject unexpected names instead of silently minting new codes.
package typemgr
