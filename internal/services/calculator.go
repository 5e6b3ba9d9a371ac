// ABOUTME: Availability calculation service over the reliability formulas
// ABOUTME: Evaluates single configurations, need sweeps, batches and redundancy recommendations

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/metrics"
	"github.com/cyan1/Availability/internal/models"
	"github.com/cyan1/Availability/internal/reliability"
)

// ErrBatchTooLarge is returned when a batch exceeds the configured size
var ErrBatchTooLarge = errors.New("batch too large")

// Calculator evaluates configurations. It holds only limits, so a single
// instance is safe for concurrent use.
type Calculator struct {
	concurrency   int
	maxComponents int
	maxBatchSize  int
}

// NewCalculator creates a calculator using the limits from cfg
func NewCalculator(cfg *config.Config) *Calculator {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Calculator{
		concurrency:   cfg.SweepConcurrency,
		maxComponents: cfg.MaxComponents,
		maxBatchSize:  cfg.MaxBatchSize,
	}
}

// Calculate evaluates one configuration
func (c *Calculator) Calculate(req models.CalculationRequest) (models.CalculationResponse, error) {
	if err := c.checkHave(req.Have); err != nil {
		metrics.CalculationsTotal.WithLabelValues(metrics.ModeUnknown, metrics.OutcomeInvalid).Inc()
		return models.CalculationResponse{}, err
	}

	report, err := reliability.Evaluate(req.Configuration())
	if err != nil {
		mode, modeErr := req.Configuration().Mode()
		label := string(mode)
		if modeErr != nil {
			label = metrics.ModeUnknown
		}
		outcome := metrics.OutcomeInvalid
		if errors.Is(err, reliability.ErrOverflow) {
			outcome = metrics.OutcomeOverflow
		}
		metrics.CalculationsTotal.WithLabelValues(label, outcome).Inc()
		return models.CalculationResponse{}, err
	}

	metrics.CalculationsTotal.WithLabelValues(string(report.Mode), metrics.OutcomeOK).Inc()
	return models.NewCalculationResponse(req.Name, report), nil
}

// Sweep evaluates need = 1..have for the same component parameters.
// Results are ordered by need; the first failure cancels the rest.
func (c *Calculator) Sweep(ctx context.Context, req models.SweepRequest) (models.SweepResponse, error) {
	if err := c.checkHave(req.Have); err != nil {
		return models.SweepResponse{}, err
	}
	mode, err := req.Request(req.Have, 1).Configuration().Mode()
	if err != nil {
		return models.SweepResponse{}, err
	}

	metrics.BatchSize.Observe(float64(req.Have))
	results := make([]models.CalculationResponse, req.Have)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for need := 1; need <= req.Have; need++ {
		need := need
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := c.Calculate(req.Request(req.Have, need))
			if err != nil {
				return fmt.Errorf("need=%d: %w", need, err)
			}
			results[need-1] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.SweepResponse{}, err
	}

	slog.Debug("Sweep completed", "have", req.Have, "mode", mode)
	return models.SweepResponse{Have: req.Have, Mode: string(mode), Results: results}, nil
}

// RunBatch evaluates every configuration. Invalid items are reported in
// their BatchItem and never abort the batch; only ctx cancellation does.
func (c *Calculator) RunBatch(ctx context.Context, reqs []models.CalculationRequest) (models.BatchResponse, error) {
	if len(reqs) > c.maxBatchSize {
		return models.BatchResponse{}, fmt.Errorf("%w: %d configurations, limit %d", ErrBatchTooLarge, len(reqs), c.maxBatchSize)
	}

	metrics.BatchSize.Observe(float64(len(reqs)))
	items := make([]models.BatchItem, len(reqs))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i].Request = req
			resp, err := c.Calculate(req)
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			items[i].Result = &resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.BatchResponse{}, err
	}

	out := models.BatchResponse{Items: items}
	for _, item := range items {
		if item.Error != "" {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}
	slog.Debug("Batch completed", "size", len(reqs), "succeeded", out.Succeeded, "failed", out.Failed)
	return out, nil
}

// Recommend finds the smallest have >= need whose availability reaches the
// target. When none does within MaxHave, the largest configuration evaluated
// is returned with Met=false.
func (c *Calculator) Recommend(req models.RecommendRequest) (models.RecommendResponse, error) {
	if err := req.Validate(); err != nil {
		return models.RecommendResponse{}, err
	}

	maxHave := req.MaxHave
	if maxHave == 0 {
		maxHave = req.Need + 10
	}
	if maxHave > c.maxComponents {
		maxHave = c.maxComponents
	}
	if err := c.checkHave(req.Need); err != nil {
		return models.RecommendResponse{}, err
	}

	var best models.CalculationResponse
	for have := req.Need; have <= maxHave; have++ {
		resp, err := c.Calculate(req.Request(have, req.Need))
		if err != nil {
			return models.RecommendResponse{}, err
		}
		best = resp
		if resp.Availability >= req.Target {
			return models.RecommendResponse{Target: req.Target, Met: true, Result: resp}, nil
		}
	}

	return models.RecommendResponse{Target: req.Target, Met: false, Result: best}, nil
}

func (c *Calculator) checkHave(have int) error {
	if have < 1 {
		return &reliability.InvalidParameterError{Param: "have", Value: have, Reason: "must be at least 1"}
	}
	if have > c.maxComponents {
		return &reliability.InvalidParameterError{
			Param:  "have",
			Value:  have,
			Reason: fmt.Sprintf("must not exceed %d", c.maxComponents),
		}
	}
	return nil
}
