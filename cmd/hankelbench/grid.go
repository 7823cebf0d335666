package main

import (
	"fmt"

	"github.com/spf13/cobra"

	algohankel "github.com/cwbudde/algo-hankel"
)

func newGridCmd() *cobra.Command {
	var (
		order  float64
		dim    int
		radius float64
		size   int
		load   string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the node and weight vectors of a transform",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				q   *algohankel.Transform
				err error
			)

			if load != "" {
				q, err = algohankel.LoadTransform(load)
			} else {
				q, err = algohankel.NewQDSHT(order, dim, radius, size)
			}

			if err != nil {
				return err
			}

			if load != "" {
				logger.Debug("loaded transform", "file", load)
			}

			fmt.Printf("order=%g dim=%d N=%d R=%g K=%g\n",
				q.Order(), q.SphDim(), q.Len(), q.R(), q.K())
			fmt.Printf("%4s  %14s  %14s  %14s  %14s\n", "i", "r", "k", "scaleR", "scaleK")

			r, k := q.RNodes(), q.KNodes()
			sr, sk := q.ScaleR(), q.ScaleK()

			for i := range r {
				fmt.Printf("%4d  %14.8g  %14.8g  %14.8g  %14.8g\n", i, r[i], k[i], sr[i], sk[i])
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&order, "order", 0, "transform order")
	cmd.Flags().IntVar(&dim, "dim", 1, "spherical dimension")
	cmd.Flags().Float64Var(&radius, "radius", 1, "aperture radius")
	cmd.Flags().IntVar(&size, "size", 16, "sample count")
	cmd.Flags().StringVar(&load, "load", "", "load a persisted transform instead of building one")

	return cmd
}
