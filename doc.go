// Package gofit provides a small, scikit-learn-flavored machine learning
// toolkit for Go, built around the estimator/transformer/pipeline
// conventions.
//
// The library keeps the familiar fit/predict/transform API so that anyone
// who has used Python's ecosystem can read the code without a manual:
//
//	enc := preprocessing.NewLabelEncoder()
//	codes, err := enc.FitTransform([]string{"cat", "dog", "cat", "bird"})
//
//	clf := dummy.NewDummyClassifier().WithRandomState(42)
//	if err := clf.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	acc, err := clf.Score(XTest, yTest)
//
// # Packages
//
//   - core/model: estimator and transformer contracts, fitted-state tracking,
//     gob persistence
//   - core/parallel: chunked parallel loops for large inputs
//   - preprocessing: LabelEncoder, OneHotEncoder, StandardScaler, MinMaxScaler
//   - dummy: DummyClassifier baseline strategies (uniform, stratified,
//     most_frequent, constant)
//   - pipeline: ordered transformer steps feeding one final estimator
//   - linear: LinearRegression via the normal equations
//   - metrics: accuracy, confusion matrix, MSE/RMSE/MAE/R²
//   - social: the toy social-network domain used throughout the examples
//
// All numeric data travels as gonum mat.Matrix values; categorical labels
// enter as strings and are carried as float64 class codes once encoded.
package gofit
