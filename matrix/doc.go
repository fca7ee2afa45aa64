// Package matrix offers a small exact-integer matrix for stoichiometry.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows/Cols/At/Set/Clone) over int64 cells.
//   - Dense, a row-major implementation with bounds-checked accessors that
//     return ErrOutOfRange instead of panicking.
//   - MatVec, an overflow-checked matrix-vector product used to verify that a
//     coefficient vector lies in the null space (every row sums to zero).
//   - Central validators (ValidateNotNil, ValidateVecLen, ...).
//
// There is no floating point anywhere in this package: atom counts are
// integers and every product is checked via package exact.
package matrix
