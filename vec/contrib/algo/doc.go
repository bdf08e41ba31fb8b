// Package algo provides elementwise slice transforms built on the vec core.
//
// Transform32 and Transform64 apply a vector operation chunk-by-chunk with a
// scalar function covering the masked tail; the named wrappers (AbsTransform,
// SqrtTransform, RecipTransform) bundle the matching op pairs.
package algo
