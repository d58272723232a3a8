// Package i18n provides internationalization support for the container order service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyIdempotencyInProgress indicates a request with the same idempotency key is still running.
	ErrKeyIdempotencyInProgress = "error.idempotency_in_progress"

	// ErrKeySessionNotFound indicates an unknown, expired or abandoned order session.
	ErrKeySessionNotFound = "error.session_not_found"
	// ErrKeyVariantNotFound indicates the catalog has no such variant.
	ErrKeyVariantNotFound = "error.variant_not_found"
	// ErrKeyCatalogUnavailable indicates the catalog could not be reached.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyDestinationUnavailable indicates the destination catalog could not be reached.
	ErrKeyDestinationUnavailable = "error.destination_unavailable"

	// ErrKeyInvalidArgument indicates a rejected mutation with a malformed argument.
	ErrKeyInvalidArgument = "error.invalid_argument"
	// ErrKeyCapacityExceeded indicates a mutation that would overfill a container.
	ErrKeyCapacityExceeded = "error.capacity_exceeded"
	// ErrKeyThermalMismatch indicates a variant that cannot travel in the container class.
	ErrKeyThermalMismatch = "error.thermal_mismatch"
	// ErrKeyLastContainer indicates an attempt to delete the only container.
	ErrKeyLastContainer = "error.last_container"
	// ErrKeyConfigurationError indicates an unknown capacity class or unsupported route.
	ErrKeyConfigurationError = "error.configuration_error"

	// ErrKeyEmptyOrder indicates a submission without any line item.
	ErrKeyEmptyOrder = "error.empty_order"
	// ErrKeySubmissionUnavailable indicates submission is not configured.
	ErrKeySubmissionUnavailable = "error.submission_unavailable"
	// ErrKeySubmissionInProgress indicates the session is being submitted.
	ErrKeySubmissionInProgress = "error.submission_in_progress"
	// ErrKeySubmissionFailed indicates the order store rejected the submission.
	ErrKeySubmissionFailed = "error.submission_failed"
)

// Success message translation keys.
const (
	// SuccessKeyOrderSubmitted indicates a successful order submission.
	SuccessKeyOrderSubmitted = "success.order_submitted"
)
