// Package pipeline composes ordered transformer steps with one final
// estimator, so a whole preprocessing-plus-model chain fits and predicts
// through a single API.
package pipeline

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gofit-ml/gofit/core/model"
	"github.com/gofit-ml/gofit/pkg/errors"
	"github.com/gofit-ml/gofit/pkg/log"
)

// Estimator is the contract for a pipeline's final stage.
type Estimator interface {
	model.Fitter
	model.Predictor
}

// Step is one named transformer stage.
type Step struct {
	Name        string
	Transformer model.Transformer
}

// Pipeline applies its transformer steps in order, feeding each stage's
// output to the next, and fits the final estimator on the last output.
// A nil final estimator yields a transformer-only pipeline.
type Pipeline struct {
	model.BaseEstimator

	steps []Step
	final Estimator
}

// NewPipeline creates a pipeline from the given steps and final estimator.
// Step names must be unique and non-empty; every step needs a transformer.
func NewPipeline(steps []Step, final Estimator) (*Pipeline, error) {
	seen := make(map[string]bool, len(steps))
	for i, step := range steps {
		if step.Name == "" {
			return nil, errors.NewValidationError("steps",
				fmt.Sprintf("step %d has an empty name", i), step.Name)
		}
		if seen[step.Name] {
			return nil, errors.NewValidationError("steps",
				"step names must be unique", step.Name)
		}
		seen[step.Name] = true
		if step.Transformer == nil {
			return nil, errors.NewValidationError("steps",
				fmt.Sprintf("step %q has a nil transformer", step.Name), nil)
		}
	}

	return &Pipeline{
		steps: append([]Step(nil), steps...),
		final: final,
	}, nil
}

// Fit fits each transformer on the running output of the previous stages,
// transforms, and finally fits the final estimator on the fully transformed
// data.
func (p *Pipeline) Fit(X, y mat.Matrix) error {
	current := X
	for _, step := range p.steps {
		transformed, err := step.Transformer.FitTransform(current)
		if err != nil {
			return errors.Wrapf(err, "pipeline step %q", step.Name)
		}
		current = transformed
	}

	if p.final != nil {
		if err := p.final.Fit(current, y); err != nil {
			return errors.Wrap(err, "pipeline final estimator")
		}
	}

	p.SetFitted()

	r, c := X.Dims()
	log.GetLoggerWithName("pipeline").Debug("fit complete",
		log.OperationKey, "fit",
		log.SamplesKey, r,
		log.FeaturesKey, c,
		"steps", len(p.steps),
	)
	return nil
}

// Predict transforms X through every fitted step and delegates to the final
// estimator.
func (p *Pipeline) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Pipeline", "Predict")
	}
	if p.final == nil {
		return nil, errors.NewValueError("Pipeline.Predict", "pipeline has no final estimator")
	}

	current, err := p.applyTransforms(X)
	if err != nil {
		return nil, err
	}
	return p.final.Predict(current)
}

// Transform applies the fitted transformer steps only. It is the usage step
// for transformer-only pipelines.
func (p *Pipeline) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Pipeline", "Transform")
	}
	return p.applyTransforms(X)
}

// FitTransform fits the transformer steps on X and returns the fully
// transformed data. It is only valid for transformer-only pipelines; with a
// final estimator attached there is no y to fit it against, so use Fit.
func (p *Pipeline) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if p.final != nil {
		return nil, errors.NewValueError("Pipeline.FitTransform",
			"pipeline ends in an estimator; call Fit with a target instead")
	}

	current := X
	for _, step := range p.steps {
		transformed, err := step.Transformer.FitTransform(current)
		if err != nil {
			return nil, errors.Wrapf(err, "pipeline step %q", step.Name)
		}
		current = transformed
	}
	p.SetFitted()
	return current, nil
}

// Score transforms X and delegates scoring to the final estimator, which
// must implement model.Scorer.
func (p *Pipeline) Score(X, y mat.Matrix) (float64, error) {
	if !p.IsFitted() {
		return 0, errors.NewNotFittedError("Pipeline", "Score")
	}
	scorer, ok := p.final.(model.Scorer)
	if !ok {
		return 0, errors.NewValueError("Pipeline.Score", "final estimator cannot score")
	}

	current, err := p.applyTransforms(X)
	if err != nil {
		return 0, err
	}
	return scorer.Score(current, y)
}

// Steps returns a copy of the pipeline's transformer steps.
func (p *Pipeline) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Final returns the final estimator, or nil for transformer-only pipelines.
func (p *Pipeline) Final() Estimator {
	return p.final
}

// String lists the step names in order.
func (p *Pipeline) String() string {
	names := make([]string, 0, len(p.steps)+1)
	for _, step := range p.steps {
		names = append(names, step.Name)
	}
	if p.final != nil {
		names = append(names, fmt.Sprintf("%T", p.final))
	}
	return fmt.Sprintf("Pipeline(%s)", strings.Join(names, " -> "))
}

func (p *Pipeline) applyTransforms(X mat.Matrix) (mat.Matrix, error) {
	current := X
	for _, step := range p.steps {
		transformed, err := step.Transformer.Transform(current)
		if err != nil {
			return nil, errors.Wrapf(err, "pipeline step %q", step.Name)
		}
		current = transformed
	}
	return current, nil
}
