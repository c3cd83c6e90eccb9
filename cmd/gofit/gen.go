package main

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gofit-ml/gofit/social"
)

func genCommand() *cobra.Command {
	var (
		samples int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Emit synthetic social users as CSV on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			users := social.NewGenerator(seed).Network(samples)

			w := csv.NewWriter(os.Stdout)
			if err := w.Write([]string{"username", "joined_date", "friends"}); err != nil {
				return err
			}
			for _, u := range users {
				record := []string{
					u.Username,
					u.JoinedDate.Format(time.DateOnly),
					strconv.Itoa(len(u.Friends)),
				}
				if err := w.Write(record); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 100, "number of users to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed (0 for time-based)")

	return cmd
}
