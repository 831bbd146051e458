// Package event defines the brightness-change record emitted by asynchronous
// event sensors and batch-level ordering checks.
//
// The package carries no analysis logic. Batches are plain slices; producers
// are expected to deliver them with non-decreasing timestamps, and consumers
// can verify that cheaply with [Ordered] before handing a batch downstream.
package event
