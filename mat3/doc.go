// Package mat3 provides the fixed 3x3 matrix type used everywhere a cluster
// transition, orientation, or Frank rotation is represented: ClusterTransition.tm,
// Cluster.orientation, and the per-face rotation products in the elastic-mapping
// compatibility test are all Matrix3 values.
//
// DXA never needs a matrix larger than 3x3, so this package hard-codes the
// 3x3 case rather than wrapping a general N x N Dense/LU/inverse type:
// Inverse is the closed-form cofactor expansion rather than Gaussian
// elimination, and there is no Dense/sparse distinction. The numeric
// kernels and the documented entry points all live in mat3.go.
//
// Complexity: every operation is O(1) (9, 27, or a fixed handful of flops).
package mat3
