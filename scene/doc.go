// SPDX-License-Identifier: MIT

// Package scene is a small scene graph on top of the matrix and vector
// packages.
//
// 🗺 Pieces
//   - Transformation: scale, rotate, translate, with identity and
//     uniform-scale fast paths. Combine chains parent and child.
//   - Node: a tree of transformations, optionally carrying a Mesh.
//     UpdateWorld propagates world transformations down the tree.
//   - Camera: a Node whose world inverse is the view matrix, plus a
//     perspective projection.
//   - Mesh: indexed triangle lists; NewCube builds the unit cube.
//   - Config: YAML scene descriptions; Build turns one into a Scene.
//
// ⚠️ Concurrency
//
//	Nothing here is synchronized. Renderers that work in parallel build one
//	Scene per goroutine from the same Config.
package scene
