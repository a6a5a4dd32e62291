package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/spec-kit/tickethub/internal/upstream"
)

func TestToDomainError_NotFound(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch todo 9999: %w", upstream.ErrNotFound)
	de := ToDomainError(err)
	if de.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want NOT_FOUND", de.Code)
	}
	if de.HTTPStatus != http.StatusNotFound {
		t.Errorf("HTTPStatus = %d, want 404", de.HTTPStatus)
	}
}

func TestToDomainError_UpstreamStatus(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch todos: %w", &upstream.StatusError{Status: 503})
	de := ToDomainError(err)
	if de.Code != "UPSTREAM_UNAVAILABLE" {
		t.Errorf("Code = %q, want UPSTREAM_UNAVAILABLE", de.Code)
	}
	if de.HTTPStatus != http.StatusBadGateway {
		t.Errorf("HTTPStatus = %d, want 502", de.HTTPStatus)
	}
}

func TestToDomainError_Transport(t *testing.T) {
	t.Parallel()

	transportErr := &url.Error{Op: "Get", URL: "http://upstream/todos", Err: errors.New("connection refused")}
	de := ToDomainError(fmt.Errorf("fetch todos: %w", transportErr))
	if de.Code != "UPSTREAM_UNAVAILABLE" {
		t.Errorf("Code = %q, want UPSTREAM_UNAVAILABLE", de.Code)
	}

	de = ToDomainError(fmt.Errorf("fetch todos: %w", context.DeadlineExceeded))
	if de.Code != "UPSTREAM_UNAVAILABLE" {
		t.Errorf("timeout Code = %q, want UPSTREAM_UNAVAILABLE", de.Code)
	}
}

func TestToDomainError_DecodeFallsToInternal(t *testing.T) {
	t.Parallel()

	de := ToDomainError(errors.New("fetch todos: decode: unexpected end of JSON input"))
	if de.Code != "INTERNAL_ERROR" {
		t.Errorf("Code = %q, want INTERNAL_ERROR", de.Code)
	}
	if de.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("HTTPStatus = %d, want 500", de.HTTPStatus)
	}
}

func TestToDomainError_PassesThroughDomainError(t *testing.T) {
	t.Parallel()

	original := NewValidationError("page must be an integer >= 1", nil)
	de := ToDomainError(original)
	if de.Code != "VALIDATION_FAILED" {
		t.Errorf("Code = %q, want VALIDATION_FAILED", de.Code)
	}
	if de.HTTPStatus != http.StatusBadRequest {
		t.Errorf("HTTPStatus = %d, want 400", de.HTTPStatus)
	}
}

func TestDomainError_MessageHidesUpstreamDetail(t *testing.T) {
	t.Parallel()

	de := ToDomainError(&upstream.StatusError{Status: 500})
	if de.Message != "upstream service unavailable" {
		t.Errorf("Message = %q leaks detail", de.Message)
	}
}
