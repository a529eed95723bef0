// Package matrix owns the fixed-size integer matrix primitives.
//
// Ownership boundary:
// - 4x4 row-major matrix value type
// - row-by-column product
// - constant operand fixture
package matrix
