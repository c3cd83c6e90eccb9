// Package dummy provides baseline classifiers that ignore the input features.
// They exist to give real models a floor to beat and to make pipeline wiring
// testable without a trained model.
package dummy

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/gofit-ml/gofit/core/model"
	gofitErrors "github.com/gofit-ml/gofit/pkg/errors"
	"github.com/gofit-ml/gofit/pkg/log"
)

// Strategy selects how DummyClassifier generates predictions.
type Strategy string

const (
	// StrategyUniform draws one of the fitted classes independently and
	// uniformly at random per input row.
	StrategyUniform Strategy = "uniform"

	// StrategyStratified draws classes according to their empirical
	// frequency in the training target.
	StrategyStratified Strategy = "stratified"

	// StrategyMostFrequent always predicts the modal training class.
	StrategyMostFrequent Strategy = "most_frequent"

	// StrategyConstant always predicts the configured Constant class.
	StrategyConstant Strategy = "constant"
)

// DummyClassifier is a baseline classifier that fits only the distinct class
// labels (in first-appearance order) and their counts; feature values are
// ignored entirely.
type DummyClassifier struct {
	model.BaseEstimator

	// Hyperparameters
	Strategy    Strategy // Prediction strategy (default: uniform)
	Constant    float64  // Class returned by StrategyConstant
	RandomState int64    // RNG seed for reproducibility; 0 means time-seeded

	// Internal state
	classes_     []float64 // Distinct labels, first-appearance order
	classCounts_ []int     // Training count per class, aligned with classes_
	nFeatures_   int       // Number of features seen during Fit
	nSamples_    int       // Number of training samples
}

// NewDummyClassifier creates a DummyClassifier with the uniform strategy.
func NewDummyClassifier() *DummyClassifier {
	return &DummyClassifier{
		Strategy: StrategyUniform,
	}
}

// WithStrategy sets the prediction strategy.
func (c *DummyClassifier) WithStrategy(s Strategy) *DummyClassifier {
	c.Strategy = s
	return c
}

// WithRandomState sets the RNG seed used by the random strategies.
func (c *DummyClassifier) WithRandomState(seed int64) *DummyClassifier {
	c.RandomState = seed
	return c
}

// WithConstant sets the class predicted by StrategyConstant.
func (c *DummyClassifier) WithConstant(class float64) *DummyClassifier {
	c.Constant = class
	return c
}

// Fit records the distinct classes and their counts from y. X contributes
// only its shape; the feature values are never inspected.
func (c *DummyClassifier) Fit(X, y mat.Matrix) (err error) {
	defer gofitErrors.Recover(&err, "DummyClassifier.Fit")

	r, cols := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || cols == 0 {
		return gofitErrors.NewModelError("DummyClassifier.Fit", "empty data", gofitErrors.ErrEmptyData)
	}
	if ry != r {
		return gofitErrors.NewDimensionError("DummyClassifier.Fit", r, ry, 0)
	}
	if cy != 1 {
		return gofitErrors.NewValueError("DummyClassifier.Fit", "y must be a column vector")
	}
	if err := c.validateStrategy(); err != nil {
		return err
	}

	c.classes_ = c.classes_[:0]
	c.classCounts_ = c.classCounts_[:0]
	index := make(map[float64]int)
	for i := 0; i < ry; i++ {
		label := y.At(i, 0)
		pos, seen := index[label]
		if !seen {
			pos = len(c.classes_)
			index[label] = pos
			c.classes_ = append(c.classes_, label)
			c.classCounts_ = append(c.classCounts_, 0)
		}
		c.classCounts_[pos]++
	}

	if c.Strategy == StrategyConstant {
		if _, ok := index[c.Constant]; !ok {
			return gofitErrors.NewValidationError("constant",
				"must be one of the classes present in y", c.Constant)
		}
	}

	c.nFeatures_ = cols
	c.nSamples_ = r
	c.SetFitted()

	log.GetLoggerWithName("dummy").Debug("fit complete",
		log.ModelNameKey, "DummyClassifier",
		log.OperationKey, "fit",
		log.SamplesKey, r,
		log.FeaturesKey, cols,
		log.ClassesKey, len(c.classes_),
	)
	return nil
}

// Predict returns one class per input row as an n×1 matrix, generated
// according to the configured strategy.
func (c *DummyClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !c.IsFitted() {
		return nil, gofitErrors.NewNotFittedError("DummyClassifier", "Predict")
	}

	r, cols := X.Dims()
	if cols != c.nFeatures_ {
		return nil, gofitErrors.NewDimensionError("DummyClassifier.Predict", c.nFeatures_, cols, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	switch c.Strategy {
	case StrategyUniform:
		rng := c.newRand()
		for i := 0; i < r; i++ {
			predictions.Set(i, 0, c.classes_[rng.Intn(len(c.classes_))])
		}
	case StrategyStratified:
		rng := c.newRand()
		for i := 0; i < r; i++ {
			predictions.Set(i, 0, c.drawStratified(rng))
		}
	case StrategyMostFrequent:
		modal := c.modalClass()
		for i := 0; i < r; i++ {
			predictions.Set(i, 0, modal)
		}
	case StrategyConstant:
		for i := 0; i < r; i++ {
			predictions.Set(i, 0, c.Constant)
		}
	}
	return predictions, nil
}

// PredictProba returns an n×k matrix of class probabilities, columns ordered
// as Classes(). The random strategies report their sampling distribution;
// the deterministic ones report a one-hot distribution.
func (c *DummyClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !c.IsFitted() {
		return nil, gofitErrors.NewNotFittedError("DummyClassifier", "PredictProba")
	}

	r, cols := X.Dims()
	if cols != c.nFeatures_ {
		return nil, gofitErrors.NewDimensionError("DummyClassifier.PredictProba", c.nFeatures_, cols, 1)
	}

	k := len(c.classes_)
	row := make([]float64, k)
	switch c.Strategy {
	case StrategyUniform:
		for j := range row {
			row[j] = 1.0 / float64(k)
		}
	case StrategyStratified:
		for j, count := range c.classCounts_ {
			row[j] = float64(count) / float64(c.nSamples_)
		}
	case StrategyMostFrequent:
		modal := c.modalClass()
		for j, class := range c.classes_ {
			if class == modal {
				row[j] = 1.0
			}
		}
	case StrategyConstant:
		for j, class := range c.classes_ {
			if class == c.Constant {
				row[j] = 1.0
			}
		}
	}

	probabilities := mat.NewDense(r, k, nil)
	for i := 0; i < r; i++ {
		probabilities.SetRow(i, row)
	}
	return probabilities, nil
}

// Classes returns the distinct class labels seen during fitting, in order of
// first appearance.
func (c *DummyClassifier) Classes() []float64 {
	if !c.IsFitted() {
		return nil
	}
	out := make([]float64, len(c.classes_))
	copy(out, c.classes_)
	return out
}

// Score returns the proportion of rows where Predict matches y exactly.
func (c *DummyClassifier) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := c.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()
	pr, _ := predictions.Dims()
	if pr != r {
		return 0, gofitErrors.NewDimensionError("DummyClassifier.Score", pr, r, 0)
	}
	if r == 0 {
		return 0, gofitErrors.NewValueError("DummyClassifier.Score", "empty target")
	}

	correct := 0
	for i := 0; i < r; i++ {
		if predictions.At(i, 0) == y.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(r), nil
}

// GetParams returns the classifier's hyperparameters.
func (c *DummyClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"strategy":     string(c.Strategy),
		"constant":     c.Constant,
		"random_state": c.RandomState,
	}
}

// SetParams updates hyperparameters from a map. Unknown keys are rejected.
func (c *DummyClassifier) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "strategy":
			s, ok := value.(string)
			if !ok {
				return gofitErrors.NewValidationError(key, "must be a string", value)
			}
			c.Strategy = Strategy(s)
		case "constant":
			f, ok := value.(float64)
			if !ok {
				return gofitErrors.NewValidationError(key, "must be a float64", value)
			}
			c.Constant = f
		case "random_state":
			seed, ok := value.(int64)
			if !ok {
				return gofitErrors.NewValidationError(key, "must be an int64", value)
			}
			c.RandomState = seed
		default:
			return gofitErrors.NewValidationError(key, "unknown parameter", value)
		}
	}
	return c.validateStrategy()
}

// String returns a compact description of the classifier.
func (c *DummyClassifier) String() string {
	if !c.IsFitted() {
		return fmt.Sprintf("DummyClassifier(strategy=%s)", c.Strategy)
	}
	return fmt.Sprintf("DummyClassifier(strategy=%s, n_classes=%d)", c.Strategy, len(c.classes_))
}

func (c *DummyClassifier) validateStrategy() error {
	switch c.Strategy {
	case StrategyUniform, StrategyStratified, StrategyMostFrequent, StrategyConstant:
		return nil
	default:
		return gofitErrors.NewValidationError("strategy",
			"must be one of: uniform, stratified, most_frequent, constant", string(c.Strategy))
	}
}

// newRand builds the RNG for one prediction pass. A fixed RandomState makes
// repeated Predict calls reproduce the same draws.
func (c *DummyClassifier) newRand() *rand.Rand {
	seed := c.RandomState
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c *DummyClassifier) drawStratified(rng *rand.Rand) float64 {
	n := rng.Intn(c.nSamples_)
	for j, count := range c.classCounts_ {
		if n < count {
			return c.classes_[j]
		}
		n -= count
	}
	return c.classes_[len(c.classes_)-1]
}

func (c *DummyClassifier) modalClass() float64 {
	best, bestCount := c.classes_[0], c.classCounts_[0]
	for j := 1; j < len(c.classes_); j++ {
		if c.classCounts_[j] > bestCount {
			best, bestCount = c.classes_[j], c.classCounts_[j]
		}
	}
	return best
}
