// SPDX-License-Identifier: MIT

// Package gldemo is a small 3D math and wireframe rendering toolkit.
//
// Layers, bottom up:
//
//   - scalar: generic real-number helpers, tolerant comparison, angle units
//   - vector: fixed Vec2/Vec3/Vec4 and dynamic VecN
//   - matrix: column-major Mat2/Mat3/Mat4 and MatN, cofactor inverses,
//     eigen and polar decompositions, projections and GPU upload helpers
//   - scene: transformations, a node hierarchy, a look-at camera, meshes
//     and YAML scene descriptions
//   - raster: a software line renderer producing WebP or PNG frames
//
// The gldemo command renders a scene description across a camera orbit.
package gldemo
