// Package postgres contains the PostgreSQL implementations of the store
// repository interfaces. Every public operation runs as a single atomic
// unit-of-work via store.RunInTransaction; uniqueness and referential
// invariants the application does not pre-check are enforced by table
// constraints and translated from PostgreSQL error codes into store
// sentinel errors.
package postgres
