// Package render draws form and force diagrams to PNG.
//
// Edges are coloured by the sign of the force they carry: tension red,
// compression blue, zero grey. Edges ending in a leaf (loads and reactions)
// are dashed. Force edges take the colour of their form edge.
//
// Drawing uses the software rasterizer of github.com/gogpu/gg; no GPU is
// required.
package render
