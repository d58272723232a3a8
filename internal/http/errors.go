package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/guttosm/container-order-service/internal/catalog"
	"github.com/guttosm/container-order-service/internal/circuitbreaker"
	"github.com/guttosm/container-order-service/internal/i18n"
	"github.com/guttosm/container-order-service/internal/service"
)

// rejectionStatus maps rejection reasons to HTTP status codes and message keys.
var rejectionStatus = map[service.Reason]struct {
	status int
	key    string
}{
	service.ReasonInvalidArgument:    {http.StatusBadRequest, i18n.ErrKeyInvalidArgument},
	service.ReasonCapacityExceeded:   {http.StatusConflict, i18n.ErrKeyCapacityExceeded},
	service.ReasonThermalMismatch:    {http.StatusConflict, i18n.ErrKeyThermalMismatch},
	service.ReasonLastContainer:      {http.StatusConflict, i18n.ErrKeyLastContainer},
	service.ReasonConfigurationError: {http.StatusUnprocessableEntity, i18n.ErrKeyConfigurationError},
}

// writeRejection renders a rejected outcome. The reason becomes the error code
// and the outcome figures go into the details.
func writeRejection(builder *ResponseBuilder, out service.Outcome) {
	mapping, ok := rejectionStatus[out.Reason]
	if !ok {
		mapping.status, mapping.key = http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
	builder.ErrorWithCode(mapping.status, string(out.Reason), mapping.key, rejectionDetails(out), nil)
}

func rejectionDetails(out service.Outcome) map[string]string {
	details := map[string]string{
		"slot": strconv.Itoa(out.Slot),
	}
	if out.Detail != "" {
		details["detail"] = out.Detail
	}
	if out.Reason == service.ReasonCapacityExceeded {
		details["axis"] = string(out.Axis)
		details["max_addable"] = strconv.Itoa(out.MaxAddable)
		if out.MaxQuantity > 0 {
			details["max_quantity"] = strconv.Itoa(out.MaxQuantity)
		}
	}
	return details
}

// writeServiceError maps order service and collaborator errors to HTTP responses.
func writeServiceError(builder *ResponseBuilder, err error) {
	var rejection *service.RejectionError
	switch {
	case errors.As(err, &rejection):
		writeRejection(builder, rejection.Outcome)
	case errors.Is(err, service.ErrSessionNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeySessionNotFound, err)
	case errors.Is(err, service.ErrSubmissionInProgress):
		builder.Error(http.StatusConflict, i18n.ErrKeySubmissionInProgress, err)
	case errors.Is(err, service.ErrEmptyOrder):
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyEmptyOrder, err)
	case errors.Is(err, service.ErrSubmissionUnavailable):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySubmissionUnavailable, err)
	case errors.Is(err, catalog.ErrVariantNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyVariantNotFound, err)
	case errors.Is(err, service.ErrVariantLookup):
		builder.Error(upstreamStatus(err), i18n.ErrKeyCatalogUnavailable, err)
	case errors.Is(err, service.ErrDestinationLookup):
		builder.Error(upstreamStatus(err), i18n.ErrKeyDestinationUnavailable, err)
	case errors.Is(err, service.ErrSubmissionFailed):
		builder.Error(upstreamStatus(err), i18n.ErrKeySubmissionFailed, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// upstreamStatus is 503 while the collaborator's circuit is open, 502 otherwise.
func upstreamStatus(err error) int {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}
