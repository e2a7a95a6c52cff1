package testutil

import (
	"errors"
	"slices"
	"testing"

	apperrors "financeapp/internal/errors"
)

// RequireAppError fails the test unless err unwraps to an *AppError with the
// given code, and returns it for further checks.
func RequireAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	switch {
	case err == nil:
		t.Fatalf("expected %s error, got nil", code)
	case !errors.As(err, &appErr):
		t.Fatalf("expected *AppError with code %s, got %T: %v", code, err, err)
	case appErr.Code != code:
		t.Fatalf("expected code %s, got %s (%s)", code, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertAppError checks that err is an *AppError with the expected code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()
	RequireAppError(t, err, code)
}

// AssertAppErrorDetails checks the code and the exact, ordered detail list.
func AssertAppErrorDetails(t *testing.T, err error, code string, details ...string) {
	t.Helper()

	appErr := RequireAppError(t, err, code)
	if !slices.Equal(appErr.Details, details) {
		t.Errorf("expected details %q, got %q", details, appErr.Details)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
