// Package preprocessing provides categorical encoders and feature scalers
// with the fit/transform API.
package preprocessing

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gofit-ml/gofit/core/model"
	"github.com/gofit-ml/gofit/pkg/errors"
)

// HandleUnknown selects what Transform does with a category that was not
// seen during Fit.
type HandleUnknown string

const (
	// HandleUnknownError makes Transform fail with UnknownCategoryError.
	HandleUnknownError HandleUnknown = "error"

	// HandleUnknownIgnore makes Transform emit the code -1 for unknown
	// categories (an all-zero row for OneHotEncoder).
	HandleUnknownIgnore HandleUnknown = "ignore"
)

// UnknownCode is the integer emitted for unknown categories under
// HandleUnknownIgnore.
const UnknownCode = -1

// LabelEncoder maps distinct string labels to integers 0..k-1, assigned in
// order of first appearance during Fit. The mapping is immutable after Fit;
// calling Fit again replaces it wholesale.
type LabelEncoder struct {
	// StateManager rather than BaseEstimator so the fitted flag survives
	// gob round trips through model.SaveModel/LoadModel.
	model.StateManager

	// Labels holds the distinct labels in first-appearance order, so
	// Labels[code] is the label for a given code.
	Labels []string

	// Codes maps each label to its integer code.
	Codes map[string]int

	// HandleUnknown is the unknown-category policy (default: error).
	HandleUnknown HandleUnknown
}

// NewLabelEncoder creates a LabelEncoder with the error unknown policy.
//
//	enc := preprocessing.NewLabelEncoder()
//	codes, err := enc.FitTransform([]string{"cat", "dog", "cat"})
//	// codes = [0, 1, 0]
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{
		HandleUnknown: HandleUnknownError,
	}
}

// WithHandleUnknown sets the unknown-category policy.
func (e *LabelEncoder) WithHandleUnknown(policy HandleUnknown) *LabelEncoder {
	e.HandleUnknown = policy
	return e
}

// Fit learns the label-to-code mapping from the given sequence. Codes are
// assigned sequentially from 0 in order of first appearance of each distinct
// label. A previous mapping is discarded.
func (e *LabelEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.NewModelError("LabelEncoder.Fit", "empty data", errors.ErrEmptyData)
	}
	if err := e.validatePolicy(); err != nil {
		return err
	}

	e.Labels = e.Labels[:0]
	e.Codes = make(map[string]int)
	for _, label := range labels {
		if _, seen := e.Codes[label]; !seen {
			e.Codes[label] = len(e.Labels)
			e.Labels = append(e.Labels, label)
		}
	}

	e.SetFitted()
	return nil
}

// Transform replaces each label with its fitted code. Labels unseen at fit
// time follow the HandleUnknown policy.
func (e *LabelEncoder) Transform(labels []string) ([]int, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}

	codes := make([]int, len(labels))
	for i, label := range labels {
		code, seen := e.Codes[label]
		if !seen {
			if e.HandleUnknown == HandleUnknownIgnore {
				codes[i] = UnknownCode
				continue
			}
			return nil, errors.NewUnknownCategoryError("LabelEncoder", label, i)
		}
		codes[i] = code
	}
	return codes, nil
}

// FitTransform fits on labels and transforms the same sequence in one call.
func (e *LabelEncoder) FitTransform(labels []string) ([]int, error) {
	if err := e.Fit(labels); err != nil {
		return nil, err
	}
	return e.Transform(labels)
}

// InverseTransform maps codes back to their original labels. Codes produced
// under HandleUnknownIgnore (-1) and codes outside [0, k) are rejected.
func (e *LabelEncoder) InverseTransform(codes []int) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}

	labels := make([]string, len(codes))
	for i, code := range codes {
		if code < 0 || code >= len(e.Labels) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform",
				fmt.Sprintf("code %d out of range [0, %d)", code, len(e.Labels)))
		}
		labels[i] = e.Labels[code]
	}
	return labels, nil
}

// TransformMatrix transforms labels and returns the codes as an n×1 matrix
// of float64, ready to feed matrix-based estimators.
func (e *LabelEncoder) TransformMatrix(labels []string) (mat.Matrix, error) {
	codes, err := e.Transform(labels)
	if err != nil {
		return nil, err
	}

	result := mat.NewDense(len(codes), 1, nil)
	for i, code := range codes {
		result.Set(i, 0, float64(code))
	}
	return result, nil
}

// Classes returns the distinct labels seen during fitting, in
// first-appearance order.
func (e *LabelEncoder) Classes() []string {
	if !e.IsFitted() {
		return nil
	}
	out := make([]string, len(e.Labels))
	copy(out, e.Labels)
	return out
}

// GetParams returns the encoder's hyperparameters.
func (e *LabelEncoder) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"handle_unknown": string(e.HandleUnknown),
	}
}

// String returns a compact description of the encoder.
func (e *LabelEncoder) String() string {
	if !e.IsFitted() {
		return fmt.Sprintf("LabelEncoder(handle_unknown=%s)", e.HandleUnknown)
	}
	return fmt.Sprintf("LabelEncoder(handle_unknown=%s, classes=[%s])",
		e.HandleUnknown, strings.Join(e.Labels, ", "))
}

func (e *LabelEncoder) validatePolicy() error {
	switch e.HandleUnknown {
	case HandleUnknownError, HandleUnknownIgnore:
		return nil
	default:
		return errors.NewValidationError("handle_unknown",
			"must be one of: error, ignore", string(e.HandleUnknown))
	}
}
