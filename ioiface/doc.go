// Package ioiface defines the external collaborator interfaces the
// mining engine depends on but does not implement: graph sources
// (GraphSource, for text notation and table readers), fragment
// describers (Describer), and the result writers (Writer,
// IdentifierWriter). No aromatic-bond normalizer interface is
// defined here. It also ships minimal reference
// implementations (SliceSource, BufferedWriter) so the engine is
// exercisable end-to-end without a real notation parser.
package ioiface
