package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{
			name:       "validation",
			err:        ErrValidation("bad payload"),
			wantCode:   CodeValidationError,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "not found",
			err:        ErrNotFound("sku"),
			wantCode:   CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid state",
			err:        ErrInvalidState("wrong order state"),
			wantCode:   CodeInvalidState,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "dependency violation",
			err:        ErrDependencyViolation("supplier does not exist"),
			wantCode:   CodeDependencyViolation,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "conflict",
			err:        ErrConflict("already exists"),
			wantCode:   CodeConflict,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "persistence",
			err:        ErrPersistence(errors.New("connection reset")),
			wantCode:   CodeServiceUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.wantCode)
			}
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %v, want %v", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	appErr := ErrInternal("").Wrap(cause)

	if !errors.Is(appErr, cause) {
		t.Errorf("expected wrapped error to match cause")
	}

	var target *AppError
	if !errors.As(appErr, &target) {
		t.Errorf("expected errors.As to find AppError")
	}
}

func TestAsAppError(t *testing.T) {
	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Errorf("plain error should not convert")
	}

	wrapped := ErrNotFoundWithID("position", "800234543412")
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatalf("expected AppError")
	}
	if appErr.Details["id"] != "800234543412" {
		t.Errorf("Details[id] = %v, want 800234543412", appErr.Details["id"])
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil) != nil {
		t.Errorf("FromError(nil) should be nil")
	}

	appErr := FromError(errors.New("boom"))
	if appErr.Code != CodeInternalError {
		t.Errorf("Code = %v, want %v", appErr.Code, CodeInternalError)
	}
	if appErr.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("HTTPStatus = %v, want 500", appErr.HTTPStatus)
	}

	original := ErrValidation("bad")
	if FromError(original) != original {
		t.Errorf("FromError should pass AppErrors through")
	}
}
