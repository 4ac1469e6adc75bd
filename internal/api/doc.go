// Package api contains the HTTP handlers. Handlers are thin glue: they
// deserialize requests into service DTOs, invoke a service, and map the
// resulting ApiResult onto fixed HTTP statuses. No domain rule lives here.
package api
