package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/stat"

	algohankel "github.com/cwbudde/algo-hankel"
)

// benchCase is one row of a benchmark suite: a transform and a batch
// shape to apply it to.
type benchCase struct {
	Order  float64 `toml:"order"`
	Dim    int     `toml:"dim"`
	Radius float64 `toml:"radius"`
	Size   int     `toml:"size"`
	Batch  int     `toml:"batch"`
}

type benchSuite struct {
	Iters  int         `toml:"iters"`
	Warmup int         `toml:"warmup"`
	Cases  []benchCase `toml:"case"`
}

func newBenchCmd() *cobra.Command {
	var (
		configFile string
		saveDir    string
		iters      int
		warmup     int
		sizes      []int
		order      float64
		dim        int
		radius     float64
		batch      int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure forward transform throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := benchSuite{Iters: iters, Warmup: warmup}

			if configFile != "" {
				if _, err := toml.DecodeFile(configFile, &suite); err != nil {
					return fmt.Errorf("failed to read suite config: %w", err)
				}

				logger.Debug("loaded suite", "file", configFile, "cases", len(suite.Cases))
			} else {
				for _, n := range sizes {
					suite.Cases = append(suite.Cases, benchCase{
						Order: order, Dim: dim, Radius: radius, Size: n, Batch: batch,
					})
				}
			}

			if len(suite.Cases) == 0 {
				return fmt.Errorf("no benchmark cases")
			}

			printHeader(suite)

			rnd := rand.New(rand.NewSource(seed))

			for _, bc := range suite.Cases {
				if err := runCase(bc, suite, rnd, saveDir); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "TOML suite description")
	cmd.Flags().StringVar(&saveDir, "save", "", "directory to persist built transforms to")
	cmd.Flags().IntVar(&iters, "iters", 200, "benchmark iterations")
	cmd.Flags().IntVar(&warmup, "warmup", 10, "warmup iterations")
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{64, 256, 1024}, "transform sizes")
	cmd.Flags().Float64Var(&order, "order", 0, "transform order")
	cmd.Flags().IntVar(&dim, "dim", 1, "spherical dimension")
	cmd.Flags().Float64Var(&radius, "radius", 10, "aperture radius")
	cmd.Flags().IntVar(&batch, "batch", 16, "batch extent alongside the transform axis")
	cmd.Flags().Int64Var(&seed, "seed", 1, "rng seed")

	return cmd
}

func printHeader(suite benchSuite) {
	fmt.Printf("goarch=%s avx2=%v neon=%v iters=%d warmup=%d\n",
		runtime.GOARCH, cpu.X86.HasAVX2, cpu.ARM64.HasASIMD, suite.Iters, suite.Warmup)
	fmt.Printf("%8s %6s %4s %8s %6s  %12s  %12s  %12s\n",
		"size", "order", "dim", "radius", "batch", "build", "ns/op", "stddev")
}

func runCase(bc benchCase, suite benchSuite, rnd *rand.Rand, saveDir string) error {
	buildStart := time.Now()

	q, err := algohankel.NewQDSHT(bc.Order, bc.Dim, bc.Radius, bc.Size)
	if err != nil {
		return fmt.Errorf("size %d: %w", bc.Size, err)
	}

	buildTime := time.Since(buildStart)

	if saveDir != "" {
		name := fmt.Sprintf("qdsht_p%g_n%d_r%g_%d.bin", bc.Order, bc.Dim, bc.Radius, bc.Size)
		if err := algohankel.SaveTransform(filepath.Join(saveDir, name), q); err != nil {
			return err
		}

		logger.Debug("saved transform", "file", name)
	}

	batch := bc.Batch
	if batch < 1 {
		batch = 1
	}

	data := make([]float64, bc.Size*batch)
	for i := range data {
		data[i] = rnd.NormFloat64()
	}

	src, err := algohankel.NewArrayFrom(data, bc.Size, batch)
	if err != nil {
		return err
	}

	dst, err := algohankel.NewArray[float64](bc.Size, batch)
	if err != nil {
		return err
	}

	for i := 0; i < suite.Warmup; i++ {
		if err := algohankel.ApplyInto(q, dst, src); err != nil {
			return err
		}
	}

	samples := make([]float64, suite.Iters)
	for i := range samples {
		start := time.Now()

		if err := algohankel.ApplyInto(q, dst, src); err != nil {
			return err
		}

		samples[i] = float64(time.Since(start).Nanoseconds())
	}

	mean, std := stat.MeanStdDev(samples, nil)

	fmt.Printf("%8d %6g %4d %8g %6d  %12s  %12.0f  %12.0f\n",
		bc.Size, bc.Order, bc.Dim, bc.Radius, batch, buildTime.Round(time.Microsecond), mean, std)

	return nil
}
