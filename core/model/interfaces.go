// Package model provides the estimator, transformer and classifier contracts
// shared by every package in gofit, plus fitted-state tracking and gob
// persistence helpers.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Scorer is the interface for models that can evaluate themselves against
// ground truth. Classifiers return accuracy, regressors return R².
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces a regression model satisfies.
type Regressor interface {
	Estimator
	Predictor
	Scorer
}

// Classifier combines the interfaces a classification model satisfies.
type Classifier interface {
	Estimator
	Predictor
	Scorer

	// PredictProba returns an n×k matrix of per-class probability
	// estimates, columns ordered as Classes().
	PredictProba(X mat.Matrix) (mat.Matrix, error)

	// Classes returns the distinct class labels seen during fitting,
	// in order of first appearance.
	Classes() []float64
}

// ParameterGetter is the interface for models that expose hyperparameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters keyed by their
	// scikit-learn-style snake_case names.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models whose hyperparameters can be
// changed after construction.
type ParameterSetter interface {
	SetParams(params map[string]interface{}) error
}

// Persistable is the interface for models that can be saved to and loaded
// from a file. SaveModel and LoadModel provide the usual implementation.
type Persistable interface {
	Save(path string) error
	Load(path string) error
}
