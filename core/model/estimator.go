package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for anything that learns from training data.
type Fitter interface {
	// Fit trains the estimator on X (n_samples × n_features) and the
	// target y (n_samples × 1).
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for fitted estimators that produce predictions.
type Predictor interface {
	// Predict returns one prediction per input row as an n×1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is the minimal contract shared by all trainable models:
// a training step plus the fitted-state queries provided by BaseEstimator.
type Estimator interface {
	Fitter
	IsFitted() bool
	Reset()
}
