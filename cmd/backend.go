// ABOUTME: Local and remote calculation backends shared by CLI commands
// ABOUTME: Local runs the calculator in-process; remote calls a server through the API client

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cyan1/Availability/internal/client"
	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/models"
	"github.com/cyan1/Availability/internal/services"
)

// backend is what every calculation command talks to
type backend interface {
	Evaluate(ctx context.Context, req models.CalculationRequest) (models.CalculationResponse, error)
	Sweep(ctx context.Context, req models.SweepRequest) (models.SweepResponse, error)
	Batch(ctx context.Context, reqs []models.CalculationRequest) (models.BatchResponse, error)
	Recommend(ctx context.Context, req models.RecommendRequest) (models.RecommendResponse, error)
}

type localBackend struct {
	calc *services.Calculator
}

func (b localBackend) Evaluate(_ context.Context, req models.CalculationRequest) (models.CalculationResponse, error) {
	return b.calc.Calculate(req)
}

func (b localBackend) Sweep(ctx context.Context, req models.SweepRequest) (models.SweepResponse, error) {
	return b.calc.Sweep(ctx, req)
}

func (b localBackend) Batch(ctx context.Context, reqs []models.CalculationRequest) (models.BatchResponse, error) {
	return b.calc.RunBatch(ctx, reqs)
}

func (b localBackend) Recommend(_ context.Context, req models.RecommendRequest) (models.RecommendResponse, error) {
	return b.calc.Recommend(req)
}

type remoteBackend struct {
	c *client.Client
}

func (b remoteBackend) Evaluate(ctx context.Context, req models.CalculationRequest) (models.CalculationResponse, error) {
	resp, err := b.c.Calculate(ctx, req)
	if err != nil {
		return models.CalculationResponse{}, err
	}
	return *resp, nil
}

func (b remoteBackend) Sweep(ctx context.Context, req models.SweepRequest) (models.SweepResponse, error) {
	resp, err := b.c.Sweep(ctx, req)
	if err != nil {
		return models.SweepResponse{}, err
	}
	return *resp, nil
}

func (b remoteBackend) Batch(ctx context.Context, reqs []models.CalculationRequest) (models.BatchResponse, error) {
	resp, err := b.c.Batch(ctx, reqs)
	if err != nil {
		return models.BatchResponse{}, err
	}
	return *resp, nil
}

func (b remoteBackend) Recommend(ctx context.Context, req models.RecommendRequest) (models.RecommendResponse, error) {
	resp, err := b.c.Recommend(ctx, req)
	if err != nil {
		return models.RecommendResponse{}, err
	}
	return *resp, nil
}

// newBackend returns the remote backend when --remote is set, otherwise a
// local calculator using limits from the environment
func newBackend() (backend, error) {
	if IsRemote() {
		return remoteBackend{c: client.New(GetAPIURL())}, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return localBackend{calc: services.NewCalculator(cfg)}, nil
}

// componentFlags are the per-component inputs shared by several commands
type componentFlags struct {
	availability float64
	mtbf         float64
	mttr         float64
}

func (f *componentFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.availability, "availability", 0, "Availability of a single component (0-1)")
	cmd.Flags().Float64Var(&f.mtbf, "mtbf", 0, "MTBF of a single component")
	cmd.Flags().Float64Var(&f.mttr, "mttr", 0, "MTTR of a single component (same unit as MTBF)")
	cmd.MarkFlagsMutuallyExclusive("availability", "mtbf")
	cmd.MarkFlagsMutuallyExclusive("availability", "mttr")
}

// params returns only the flags that were given, so the calculator can
// tell probability mode from rates mode
func (f *componentFlags) params(cmd *cobra.Command) models.ComponentParams {
	var p models.ComponentParams
	if cmd.Flags().Changed("availability") {
		p.Availability = &f.availability
	}
	if cmd.Flags().Changed("mtbf") {
		p.MTBF = &f.mtbf
	}
	if cmd.Flags().Changed("mttr") {
		p.MTTR = &f.mttr
	}
	return p
}

func formatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON output: %w", err)
	}
	return string(data), nil
}

// printJSON writes v as indented JSON, or reports the encoding error
func printJSON(w io.Writer, v any) error {
	out, err := formatJSON(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}

func printError(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	return 2
}
