package service

// ErrorCode is the closed set of symbolic failure reasons a service can
// report. Every expected domain-rule violation maps to exactly one code;
// unexpected store failures are reported as ErrorDatabase, never propagated
// raw. The transport layer maps each code to a fixed HTTP status without
// inspecting error types.
type ErrorCode string

const (
	ErrorUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrorAccountNotFound   ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrorAccountExists     ErrorCode = "ACCOUNT_ALREADY_EXIST"
	ErrorTransactionExists ErrorCode = "TRANSACTION_ALREADY_EXIST"
	ErrorDatabase          ErrorCode = "DATABASE_ERROR"
	ErrorMapping           ErrorCode = "MAPPING_ERROR"
	ErrorPassword          ErrorCode = "PASSWORD_ERROR"
)

// ApiResult is the two-variant outcome returned at every service boundary:
// either Success carrying a value, or Failure carrying an ErrorCode. There is
// no third state and no error path that bypasses it.
type ApiResult[T any] struct {
	value   T
	code    ErrorCode
	success bool
}

// Success creates a successful result carrying value.
func Success[T any](value T) ApiResult[T] {
	return ApiResult[T]{value: value, success: true}
}

// Failure creates a failed result carrying the given error code.
func Failure[T any](code ErrorCode) ApiResult[T] {
	return ApiResult[T]{code: code}
}

// IsSuccess reports whether the result is the Success variant.
func (r ApiResult[T]) IsSuccess() bool {
	return r.success
}

// Value returns the carried value. Only meaningful on the Success variant.
func (r ApiResult[T]) Value() T {
	return r.value
}

// Code returns the carried error code. Empty on the Success variant.
func (r ApiResult[T]) Code() ErrorCode {
	return r.code
}
