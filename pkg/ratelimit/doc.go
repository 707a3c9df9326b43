// Package ratelimit provides client-side throttling primitives for the
// reputation lookup endpoint: a concurrency limiter capping in-flight
// requests and request pacing via golang.org/x/time/rate.
package ratelimit
