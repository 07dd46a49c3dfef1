// Package testing provides helpers for tests: a testing.T-backed logger and
// an embedded NATS server.
//
// It is imported by the library's own tests and is useful for applications
// testing code built on the distribute service.
package testing
