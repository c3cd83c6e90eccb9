package preprocessing

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/gofit-ml/gofit/core/model"
	"github.com/gofit-ml/gofit/pkg/errors"
)

func TestLabelEncoderFirstAppearanceOrder(t *testing.T) {
	tests := []struct {
		name        string
		labels      []string
		wantClasses []string
		wantCodes   []int
	}{
		{
			name:        "distinct labels",
			labels:      []string{"cat", "dog", "bird"},
			wantClasses: []string{"cat", "dog", "bird"},
			wantCodes:   []int{0, 1, 2},
		},
		{
			name:        "repeats keep first-seen order",
			labels:      []string{"dog", "cat", "dog", "bird", "cat"},
			wantClasses: []string{"dog", "cat", "bird"},
			wantCodes:   []int{0, 1, 0, 2, 1},
		},
		{
			name:        "single label",
			labels:      []string{"x", "x", "x"},
			wantClasses: []string{"x"},
			wantCodes:   []int{0, 0, 0},
		},
		{
			name:        "not alphabetical",
			labels:      []string{"zebra", "ant", "zebra", "mole"},
			wantClasses: []string{"zebra", "ant", "mole"},
			wantCodes:   []int{0, 1, 0, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewLabelEncoder()
			codes, err := enc.FitTransform(tt.labels)
			if err != nil {
				t.Fatalf("FitTransform() error = %v", err)
			}
			if !reflect.DeepEqual(codes, tt.wantCodes) {
				t.Errorf("codes = %v, want %v", codes, tt.wantCodes)
			}
			if got := enc.Classes(); !reflect.DeepEqual(got, tt.wantClasses) {
				t.Errorf("Classes() = %v, want %v", got, tt.wantClasses)
			}
		})
	}
}

func TestLabelEncoderRoundTrip(t *testing.T) {
	labels := []string{"red", "green", "blue", "green", "red"}

	enc := NewLabelEncoder()
	codes, err := enc.FitTransform(labels)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	back, err := enc.InverseTransform(codes)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}
	if !reflect.DeepEqual(back, labels) {
		t.Errorf("round trip = %v, want %v", back, labels)
	}
}

func TestLabelEncoderRefitReplacesMapping(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit([]string{"a", "b"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	if err := enc.Fit([]string{"z", "y", "x"}); err != nil {
		t.Fatalf("second Fit() error = %v", err)
	}

	want := []string{"z", "y", "x"}
	if got := enc.Classes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Classes() after refit = %v, want %v", got, want)
	}

	// "a" belonged to the first mapping only.
	if _, err := enc.Transform([]string{"a"}); err == nil {
		t.Error("expected unknown-category error after refit")
	}
}

func TestLabelEncoderUnknownPolicy(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit([]string{"cat", "dog"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	_, err := enc.Transform([]string{"cat", "lizard"})
	if err == nil {
		t.Fatal("expected error for unknown category under default policy")
	}
	var unkErr *errors.UnknownCategoryError
	if !errors.As(err, &unkErr) {
		t.Fatalf("expected *UnknownCategoryError, got %T", err)
	}
	if unkErr.Category != "lizard" || unkErr.Position != 1 {
		t.Errorf("got category=%q position=%d, want lizard/1", unkErr.Category, unkErr.Position)
	}

	enc.WithHandleUnknown(HandleUnknownIgnore)
	codes, err := enc.Transform([]string{"cat", "lizard", "dog"})
	if err != nil {
		t.Fatalf("Transform() with ignore policy error = %v", err)
	}
	if want := []int{0, UnknownCode, 1}; !reflect.DeepEqual(codes, want) {
		t.Errorf("codes = %v, want %v", codes, want)
	}
}

func TestLabelEncoderErrors(t *testing.T) {
	enc := NewLabelEncoder()

	if _, err := enc.Transform([]string{"a"}); err == nil {
		t.Error("Transform before Fit should fail")
	} else {
		var notFitted *errors.NotFittedError
		if !errors.As(err, &notFitted) {
			t.Errorf("expected *NotFittedError, got %T", err)
		}
	}

	if err := enc.Fit(nil); err == nil {
		t.Error("Fit with empty input should fail")
	} else if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData in chain, got %v", err)
	}

	if err := enc.Fit([]string{"a", "b"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if _, err := enc.InverseTransform([]int{0, 5}); err == nil {
		t.Error("InverseTransform with out-of-range code should fail")
	}
}

func TestLabelEncoderTransformMatrix(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit([]string{"no", "yes"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	X, err := enc.TransformMatrix([]string{"yes", "no", "yes"})
	if err != nil {
		t.Fatalf("TransformMatrix() error = %v", err)
	}

	r, c := X.Dims()
	if r != 3 || c != 1 {
		t.Fatalf("Dims() = (%d, %d), want (3, 1)", r, c)
	}
	want := []float64{1, 0, 1}
	for i, w := range want {
		if got := X.At(i, 0); got != w {
			t.Errorf("X[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestLabelEncoderGobRoundTrip(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit([]string{"spring", "summer", "fall", "winter"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	var buf bytes.Buffer
	if err := model.SaveModelToWriter(enc, &buf); err != nil {
		t.Fatalf("SaveModelToWriter() error = %v", err)
	}

	loaded := NewLabelEncoder()
	if err := model.LoadModelFromReader(loaded, &buf); err != nil {
		t.Fatalf("LoadModelFromReader() error = %v", err)
	}

	if !reflect.DeepEqual(loaded.Labels, enc.Labels) {
		t.Errorf("loaded labels = %v, want %v", loaded.Labels, enc.Labels)
	}
	codes, err := loaded.Transform([]string{"fall"})
	if err != nil {
		t.Fatalf("Transform() on loaded encoder error = %v", err)
	}
	if codes[0] != 2 {
		t.Errorf("code = %d, want 2", codes[0])
	}
}
