package preprocessing

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/gofit-ml/gofit/pkg/errors"
)

func TestOneHotEncoderTransform(t *testing.T) {
	enc := NewOneHotEncoder()
	X, err := enc.FitTransform([]string{"cat", "dog", "cat", "bird"})
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	r, c := X.Dims()
	if r != 4 || c != 3 {
		t.Fatalf("Dims() = (%d, %d), want (4, 3)", r, c)
	}

	// Columns follow first appearance: cat, dog, bird.
	want := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}
	for i, row := range want {
		for j, w := range row {
			if got := X.At(i, j); got != w {
				t.Errorf("X[%d][%d] = %v, want %v", i, j, got, w)
			}
		}
	}

	if got, want := enc.Classes(), []string{"cat", "dog", "bird"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Classes() = %v, want %v", got, want)
	}
}

func TestOneHotEncoderInverseTransform(t *testing.T) {
	enc := NewOneHotEncoder()
	labels := []string{"a", "b", "c", "b"}
	X, err := enc.FitTransform(labels)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	back, err := enc.InverseTransform(X)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}
	if !reflect.DeepEqual(back, labels) {
		t.Errorf("round trip = %v, want %v", back, labels)
	}

	// Wrong width is rejected.
	if _, err := enc.InverseTransform(mat.NewDense(1, 2, nil)); err == nil {
		t.Error("expected dimension error for wrong column count")
	}
}

func TestOneHotEncoderUnknownPolicy(t *testing.T) {
	enc := NewOneHotEncoder()
	if err := enc.Fit([]string{"x", "y"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	if _, err := enc.Transform([]string{"z"}); err == nil {
		t.Fatal("expected error for unknown category under default policy")
	}

	enc.WithHandleUnknown(HandleUnknownIgnore)
	X, err := enc.Transform([]string{"x", "z"})
	if err != nil {
		t.Fatalf("Transform() with ignore policy error = %v", err)
	}

	// Unknown category becomes an all-zero row.
	if got := X.At(1, 0) + X.At(1, 1); got != 0 {
		t.Errorf("unknown row sum = %v, want 0", got)
	}

	back, err := enc.InverseTransform(X)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}
	if back[1] != "" {
		t.Errorf("inverse of all-zero row = %q, want empty string", back[1])
	}
}

func TestOneHotEncoderNotFitted(t *testing.T) {
	enc := NewOneHotEncoder()
	_, err := enc.Transform([]string{"a"})
	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Fatalf("expected *NotFittedError, got %v", err)
	}
}
