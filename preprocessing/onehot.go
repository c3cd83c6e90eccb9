package preprocessing

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gofit-ml/gofit/core/model"
	"github.com/gofit-ml/gofit/pkg/errors"
)

// OneHotEncoder expands a sequence of string labels into an n×k indicator
// matrix with one column per distinct label. Columns are ordered by first
// appearance during Fit, matching LabelEncoder's code assignment.
type OneHotEncoder struct {
	// StateManager keeps the fitted flag exported for gob persistence.
	model.StateManager

	// Categories holds the distinct labels in first-appearance order,
	// one per output column.
	Categories []string

	// Columns maps each label to its column index.
	Columns map[string]int

	// HandleUnknown is the unknown-category policy (default: error).
	// Under HandleUnknownIgnore an unknown label yields an all-zero row.
	HandleUnknown HandleUnknown
}

// NewOneHotEncoder creates a OneHotEncoder with the error unknown policy.
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{
		HandleUnknown: HandleUnknownError,
	}
}

// WithHandleUnknown sets the unknown-category policy.
func (e *OneHotEncoder) WithHandleUnknown(policy HandleUnknown) *OneHotEncoder {
	e.HandleUnknown = policy
	return e
}

// Fit learns the category-to-column mapping, replacing any previous one.
func (e *OneHotEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.NewModelError("OneHotEncoder.Fit", "empty data", errors.ErrEmptyData)
	}
	switch e.HandleUnknown {
	case HandleUnknownError, HandleUnknownIgnore:
	default:
		return errors.NewValidationError("handle_unknown",
			"must be one of: error, ignore", string(e.HandleUnknown))
	}

	e.Categories = e.Categories[:0]
	e.Columns = make(map[string]int)
	for _, label := range labels {
		if _, seen := e.Columns[label]; !seen {
			e.Columns[label] = len(e.Categories)
			e.Categories = append(e.Categories, label)
		}
	}

	e.SetFitted()
	return nil
}

// Transform encodes labels as an n×k indicator matrix with exactly one 1 per
// row for known labels.
func (e *OneHotEncoder) Transform(labels []string) (mat.Matrix, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}

	result := mat.NewDense(len(labels), len(e.Categories), nil)
	for i, label := range labels {
		col, seen := e.Columns[label]
		if !seen {
			if e.HandleUnknown == HandleUnknownIgnore {
				continue // all-zero row
			}
			return nil, errors.NewUnknownCategoryError("OneHotEncoder", label, i)
		}
		result.Set(i, col, 1.0)
	}
	return result, nil
}

// FitTransform fits on labels and transforms the same sequence in one call.
func (e *OneHotEncoder) FitTransform(labels []string) (mat.Matrix, error) {
	if err := e.Fit(labels); err != nil {
		return nil, err
	}
	return e.Transform(labels)
}

// InverseTransform maps an indicator matrix back to labels by taking the
// column with the largest value per row. An all-zero row is rejected unless
// the policy is HandleUnknownIgnore, in which case it yields "".
func (e *OneHotEncoder) InverseTransform(X mat.Matrix) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "InverseTransform")
	}

	r, c := X.Dims()
	if c != len(e.Categories) {
		return nil, errors.NewDimensionError("OneHotEncoder.InverseTransform", len(e.Categories), c, 1)
	}

	labels := make([]string, r)
	for i := 0; i < r; i++ {
		best, bestVal := -1, 0.0
		for j := 0; j < c; j++ {
			if v := X.At(i, j); v > bestVal {
				best, bestVal = j, v
			}
		}
		if best < 0 {
			if e.HandleUnknown == HandleUnknownIgnore {
				labels[i] = ""
				continue
			}
			return nil, errors.NewValueError("OneHotEncoder.InverseTransform",
				fmt.Sprintf("row %d has no active column", i))
		}
		labels[i] = e.Categories[best]
	}
	return labels, nil
}

// Classes returns the distinct categories seen during fitting, in
// first-appearance order.
func (e *OneHotEncoder) Classes() []string {
	if !e.IsFitted() {
		return nil
	}
	out := make([]string, len(e.Categories))
	copy(out, e.Categories)
	return out
}

// GetParams returns the encoder's hyperparameters.
func (e *OneHotEncoder) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"handle_unknown": string(e.HandleUnknown),
	}
}

// String returns a compact description of the encoder.
func (e *OneHotEncoder) String() string {
	if !e.IsFitted() {
		return fmt.Sprintf("OneHotEncoder(handle_unknown=%s)", e.HandleUnknown)
	}
	return fmt.Sprintf("OneHotEncoder(handle_unknown=%s, categories=[%s])",
		e.HandleUnknown, strings.Join(e.Categories, ", "))
}
