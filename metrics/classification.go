package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gofit-ml/gofit/pkg/errors"
)

// Accuracy computes the proportion of predictions that match the ground
// truth exactly.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// AccuracyMatrix computes accuracy for n×1 matrix inputs.
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	yTrueVec, yPredVec, err := columnVectors("AccuracyMatrix", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return Accuracy(yTrueVec, yPredVec)
}

// ConfusionMatrix computes a k×k matrix where entry (i, j) counts samples
// whose true class is labels[i] and predicted class is labels[j]. Labels are
// collected from yTrue then yPred in order of first appearance. The label
// slice is returned alongside the counts.
func ConfusionMatrix(yTrue, yPred *mat.VecDense) (*mat.Dense, []float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, nil, errors.NewValueError("ConfusionMatrix", "empty vector")
	}
	if yPred.Len() != n {
		return nil, nil, errors.NewDimensionError("ConfusionMatrix", n, yPred.Len(), 0)
	}

	index := make(map[float64]int)
	var labels []float64
	add := func(label float64) {
		if _, seen := index[label]; !seen {
			index[label] = len(labels)
			labels = append(labels, label)
		}
	}
	for i := 0; i < n; i++ {
		add(yTrue.AtVec(i))
	}
	for i := 0; i < n; i++ {
		add(yPred.AtVec(i))
	}

	k := len(labels)
	counts := mat.NewDense(k, k, nil)
	for i := 0; i < n; i++ {
		row := index[yTrue.AtVec(i)]
		col := index[yPred.AtVec(i)]
		counts.Set(row, col, counts.At(row, col)+1)
	}
	return counts, labels, nil
}
