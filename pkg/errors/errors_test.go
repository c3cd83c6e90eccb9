package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "gofit: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "gofit: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("DummyClassifier", "Predict")

	want := "gofit: DummyClassifier: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Transform", 3, 5, 1)

	want := "gofit: Transform: dimension mismatch on axis 1 (features). Expected 3, got 5"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
	if dimErr.Got != 5 {
		t.Errorf("Got = %d, want 5", dimErr.Got)
	}
}

func TestNewUnknownCategoryError(t *testing.T) {
	err := NewUnknownCategoryError("LabelEncoder", "lizard", 4)

	want := `gofit: LabelEncoder: found unknown category "lizard" at position 4 during transform`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var unkErr *UnknownCategoryError
	if !As(err, &unkErr) {
		t.Error("Error should be castable to *UnknownCategoryError")
	}
	if unkErr.Category != "lizard" {
		t.Errorf("Category = %q, want %q", unkErr.Category, "lizard")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("strategy", "must be one of uniform, stratified, most_frequent, constant", "median")

	if !strings.Contains(err.Error(), "validation failed for parameter 'strategy'") {
		t.Errorf("unexpected message: %v", err)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestWarnUsesHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewUndefinedMetricWarning("accuracy", "empty input", 0.0)
	Warn(warning)

	if captured == nil {
		t.Fatal("expected warning handler to be invoked")
	}
	if !strings.Contains(captured.Error(), "'accuracy' is ill-defined") {
		t.Errorf("unexpected warning message: %v", captured)
	}
}

func TestSentinelErrors(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "LabelEncoder.Fit")
	if !Is(wrapped, ErrEmptyData) {
		t.Error("wrapped sentinel should still match with Is")
	}
}
