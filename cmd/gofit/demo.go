package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/gofit-ml/gofit/dummy"
	"github.com/gofit-ml/gofit/preprocessing"
	"github.com/gofit-ml/gofit/social"
)

// segment buckets a username into a coarse length class. It gives the demo
// a categorical target with a handful of distinct values.
func segment(username string) string {
	switch {
	case len(username) < 8:
		return "short"
	case len(username) < 12:
		return "medium"
	default:
		return "long"
	}
}

func demoCommand() *cobra.Command {
	var (
		samples  int
		strategy string
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fit a label encoder and a baseline classifier on synthetic users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users := social.NewGenerator(seed).Users(samples)

			labels := make([]string, len(users))
			features := make([]float64, len(users))
			for i, u := range users {
				labels[i] = segment(u.Username)
				features[i] = float64(len(u.Username))
			}

			enc := preprocessing.NewLabelEncoder()
			codes, err := enc.FitTransform(labels)
			if err != nil {
				return err
			}

			n := len(codes)
			y := mat.NewDense(n, 1, nil)
			for i, code := range codes {
				y.Set(i, 0, float64(code))
			}
			X := mat.NewDense(n, 1, features)

			clf := dummy.NewDummyClassifier().
				WithStrategy(dummy.Strategy(strategy)).
				WithRandomState(seed)
			if err := clf.Fit(X, y); err != nil {
				return err
			}

			score, err := clf.Score(X, y)
			if err != nil {
				return err
			}

			fmt.Printf("samples:  %d\n", n)
			fmt.Printf("classes:  %v\n", enc.Classes())
			fmt.Printf("strategy: %s\n", strategy)
			fmt.Printf("accuracy: %.4f\n", score)
			return nil
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 1000, "number of synthetic users")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(dummy.StrategyUniform),
		"classifier strategy (uniform, stratified, most_frequent)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed (0 for time-based)")

	return cmd
}
