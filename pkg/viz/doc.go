// Package viz renders block trees as Graphviz diagrams.
//
// [ToDOT] converts a tree to DOT source with one graph node per block and an
// edge from every container to its children. [RenderSVG] and [RenderPNG] run
// the DOT source through Graphviz via github.com/goccy/go-graphviz, which
// embeds the layout engine and needs no external binaries.
package viz
