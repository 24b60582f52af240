package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		e := NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
		if e.Error() != "Quotation not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "QUOTATION_NOT_FOUND" || body.Message != "Quotation not found" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("wrapped cause is not exposed", func(t *testing.T) {
		cause := errors.New("dynamodb: throttled")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		if body := e.ToHTTPError(); body.Message != "An internal error occurred" {
			t.Fatalf("cause leaked into body: %+v", body)
		}
	})

	t.Run("IsAppError through wrapping", func(t *testing.T) {
		e := fmt.Errorf("handler: %w", NewDomainErrorSimple("X", "x", http.StatusBadRequest))
		if !IsAppError(e) {
			t.Fatalf("expected wrapped AppError to be detected")
		}
		if IsAppError(errors.New("plain")) {
			t.Fatalf("plain error must not be an AppError")
		}
	})
}
