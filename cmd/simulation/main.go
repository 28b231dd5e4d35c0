package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
)

const usage = "Need 3 arguments: simulation <num_of_montecarlo_paths_per_thread(int)> <num_threads(int)> <thread_affinity(0/1)>"

// 标准场景参数：一年期平值期权
const (
	defaultSpot       = 100.0
	defaultStrike     = 100.0
	defaultRate       = 0.05
	defaultVolatility = 0.2
	defaultMaturity   = 1.0
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println(usage)
		os.Exit(-1)
	}

	numPaths, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Println(usage)
		os.Exit(-1)
	}
	numThreads, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Println(usage)
		os.Exit(-1)
	}
	affinityFlag, err := strconv.Atoi(os.Args[3])
	if err != nil {
		fmt.Println(usage)
		os.Exit(-1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	pool, err := domain.NewPool(numThreads, domain.WithAffinity(affinityFlag == 1))
	if err != nil {
		slog.Error("failed to create worker pool", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d CPUs\n", pool.NumCores())

	params := domain.SimulationParameters{
		NumPaths: numPaths,
		S:        defaultSpot,
		K:        defaultStrike,
		R:        defaultRate,
		V:        defaultVolatility,
		T:        defaultMaturity,
	}
	results, err := pool.Run(context.Background(), params)
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	for _, r := range results {
		printReport(r)
	}
}

func printReport(r domain.PricingResult) {
	fmt.Printf("THREAD:           %d\n", r.WorkerID)
	fmt.Printf(" Number of Paths: %d\n", r.Params.NumPaths)
	fmt.Printf(" Underlying:      %g\n", r.Params.S)
	fmt.Printf(" Strike:          %g\n", r.Params.K)
	fmt.Printf(" Risk-Free Rate:  %g\n", r.Params.R)
	fmt.Printf(" Volatility:      %g\n", r.Params.V)
	fmt.Printf(" Maturity:        %g\n", r.Params.T)
	fmt.Printf(" Call Price:      %g\n", r.CallPrice)
	fmt.Printf(" Put Price:       %g\n\n", r.PutPrice)
}
