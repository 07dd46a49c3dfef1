// Package types defines the core types, interfaces, and sentinel errors shared
// across the distribute library.
//
// It exists as a leaf package so that internal packages can depend on the core
// definitions without importing the root distribute package, avoiding import
// cycles. The root package re-exports the common types for convenience.
package types
