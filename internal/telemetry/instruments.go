package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/mansoorceksport/fitgauge"

// Instruments are the evaluation counters recorded by services.
// The zero value is not usable; a nil *Instruments records nothing.
type Instruments struct {
	progressEvaluations metric.Int64Counter
	tierEvaluations     metric.Int64Counter
	searchQueries       metric.Int64Counter
}

// NewInstruments creates the counters on the global meter provider, which
// is a no-op until Initialize has run.
func NewInstruments() (*Instruments, error) {
	return NewInstrumentsFromMeter(otel.Meter(meterName))
}

func NewInstrumentsFromMeter(meter metric.Meter) (*Instruments, error) {
	progress, err := meter.Int64Counter("fitgauge.progress.evaluations",
		metric.WithDescription("Goal progress evaluations, by band"))
	if err != nil {
		return nil, err
	}
	tiers, err := meter.Int64Counter("fitgauge.tier.evaluations",
		metric.WithDescription("Member tier evaluations"))
	if err != nil {
		return nil, err
	}
	search, err := meter.Int64Counter("fitgauge.search.queries",
		metric.WithDescription("Catalog search queries, by catalog"))
	if err != nil {
		return nil, err
	}
	return &Instruments{
		progressEvaluations: progress,
		tierEvaluations:     tiers,
		searchQueries:       search,
	}, nil
}

func (i *Instruments) ProgressEvaluated(ctx context.Context, band string, degenerate bool) {
	if i == nil {
		return
	}
	i.progressEvaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("band", band),
		attribute.Bool("degenerate", degenerate),
	))
}

func (i *Instruments) TiersEvaluated(ctx context.Context, unlocked int) {
	if i == nil {
		return
	}
	i.tierEvaluations.Add(ctx, 1, metric.WithAttributes(attribute.Int("unlocked", unlocked)))
}

func (i *Instruments) SearchServed(ctx context.Context, catalog string, results int) {
	if i == nil {
		return
	}
	i.searchQueries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("catalog", catalog),
		attribute.Bool("empty", results == 0),
	))
}
