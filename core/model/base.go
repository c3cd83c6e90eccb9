package model

// EstimatorState tracks whether an estimator has been trained.
type EstimatorState int

const (
	// NotFitted is the state of an estimator before Fit has succeeded.
	NotFitted EstimatorState = iota
	// Fitted is the state of an estimator after Fit has succeeded.
	Fitted
)

// BaseEstimator is the embeddable base for every estimator and transformer.
// It carries only the fitted/not-fitted flag; learned parameters live on the
// embedding struct so they stay visible and gob-encodable.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted. Called by Fit implementations
// after all learned parameters have been stored.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to the not-fitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
