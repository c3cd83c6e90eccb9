package model

import "gonum.org/v1/gonum/mat"

// Transformer is the interface for data transformations whose usage step
// returns a modified version of the input rather than a prediction.
type Transformer interface {
	// Fit learns the parameters required by the transformation.
	Fit(X mat.Matrix) error

	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits on X and transforms the same data in one call.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// InverseTransformer is a Transformer whose mapping can be reversed.
type InverseTransformer interface {
	Transformer

	// InverseTransform maps transformed data back to the original space.
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
}
