// SPDX-License-Identifier: MIT

// Package raster is a CPU wireframe backend for scene.Scene.
//
// Each drawable node is transformed by projection·view·world, uploaded as a
// row-major float32 matrix, and its mesh edges are stroked as thin quads
// with golang.org/x/image/vector. Edges with an endpoint at or behind the
// eye plane are dropped. Frames are drawn at Supersample× resolution and
// filtered down with golang.org/x/image/draw, then encoded as WebP or PNG.
package raster
