// Package service exposes the distribute engine over NATS request-reply.
//
// The service subscribes one queue group to a single subject and answers JSON
// requests with either the partitioned games or a human-readable error. It is
// stateless: each request is an independent engine call, so the surrounding
// chat gateway can fan in concurrent commands freely.
package service
