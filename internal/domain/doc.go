// Package domain contains the core entities of the banking system: users,
// accounts, transactions and administrators. Entities are plain records with
// field-level validation; uniqueness and referential invariants are the
// store's responsibility.
package domain
