// Package service implements the validation-to-result pipeline over the
// store repositories. Each service validates DTO fields strictly before any
// store interaction, resolves related entities through repository lookups,
// performs the write inside the repository's unit-of-work, and translates
// every failure into the closed ErrorCode set carried by ApiResult.
package service
