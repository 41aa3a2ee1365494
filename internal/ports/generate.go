// Package ports defines the interfaces between the core use cases and the
// adapters that talk to the weather API, storage, cache and the process.
// Mocks for every interface live in internal/mocks.
//
//go:generate mockery
package ports
