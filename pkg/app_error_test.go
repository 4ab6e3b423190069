package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Budget not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		if e.Error() != "NOT_FOUND: Budget not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
	})

	t.Run("wrapped error stays internal", func(t *testing.T) {
		cause := errors.New("disk full")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		body := e.ToHTTPError()
		if body.Details != "" || body.Code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
