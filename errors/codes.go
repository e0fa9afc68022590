// Package errors provides the structured error taxonomy used by treeio.
// It extends Go's standard error handling with string error codes and
// context preservation so callers can branch on the failure class without
// parsing messages.
package errors

// ErrorCode represents a specific failure class.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates the requested file does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyGenerated indicates the input was produced by a previous run of the tool.
	CodeAlreadyGenerated ErrorCode = "ALREADY_GENERATED"

	// Permission errors.

	// CodePermissionDenied indicates the process lacks permission for the operation.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid, e.g. a directory
	// given where a file is expected.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Infrastructure errors.

	// CodeIOFailure indicates a read, write or open operation failed.
	CodeIOFailure ErrorCode = "IO_FAILURE"

	// System errors.

	// CodeInternal indicates a condition that should be unreachable.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
