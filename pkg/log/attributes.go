package log

// Model and operation context attributes. Using the same keys everywhere
// keeps log filtering predictable across packages.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "LabelEncoder", "DummyClassifier", "Pipeline"
	ModelNameKey = "model.name"

	// EstimatorIDKey is a unique identifier for a model instance.
	EstimatorIDKey = "estimator.id"

	// OperationKey names the ML operation being performed.
	// Standard values: "fit", "predict", "transform", "fit_transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "preprocessing", "dummy", "pipeline"
	ComponentKey = "ml.component"
)

// Data shape attributes.
const (
	// SamplesKey is the number of samples (rows) processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) processed.
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct classes seen during fitting.
	ClassesKey = "data.classes"
)

// Performance and metric attributes.
const (
	// DurationMsKey records the execution time of an operation in ms.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// R2ScoreKey records the R² coefficient of determination.
	R2ScoreKey = "metrics.r2_score"
)
