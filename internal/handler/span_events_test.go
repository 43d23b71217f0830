package handler

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/middleware"
	"github.com/mansoorceksport/fitgauge/internal/service"
	"github.com/mansoorceksport/fitgauge/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type staticTiers []domain.Tier

func (s staticTiers) ListTiers(ctx context.Context) ([]domain.Tier, error) {
	return s, nil
}

// staticRecords serves a fixed record set for every member
type staticRecords []*domain.PersonalRecord

func (s staticRecords) GetByMemberAndExercise(ctx context.Context, memberID, exerciseID string) (*domain.PersonalRecord, error) {
	for _, r := range s {
		if r.ExerciseID == exerciseID {
			return r, nil
		}
	}
	return nil, nil
}

func (s staticRecords) Upsert(ctx context.Context, pr *domain.PersonalRecord) (bool, error) {
	return false, nil
}

func (s staticRecords) GetByMember(ctx context.Context, memberID string) ([]*domain.PersonalRecord, error) {
	return s, nil
}

func (s staticRecords) ReplaceForMember(ctx context.Context, memberID string, records []*domain.PersonalRecord) error {
	return nil
}

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})
	return recorder
}

func eventNamed(span sdktrace.ReadOnlySpan, name string) (sdktrace.Event, bool) {
	for _, ev := range span.Events() {
		if ev.Name == name {
			return ev, true
		}
	}
	return sdktrace.Event{}, false
}

func TestProgressHandler_DegenerateTargetEvent(t *testing.T) {
	recorder := recordSpans(t)

	app := fiber.New()
	app.Use(telemetry.FiberMiddleware())
	app.Post("/evaluate", NewProgressHandler(service.NewProgressService(nil, 0, nil)).Evaluate)

	status, _ := send(t, app, "POST", "/evaluate", `{"current": 35, "target": 40}`)
	require.Equal(t, 200, status)
	status, _ = send(t, app, "POST", "/evaluate", `{"current": 35, "target": 0}`)
	require.Equal(t, 200, status)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	_, found := eventNamed(spans[0], "progress.degenerate_target")
	assert.False(t, found)

	ev, found := eventNamed(spans[1], "progress.degenerate_target")
	require.True(t, found)
	assert.Contains(t, ev.Attributes, attribute.String("progress.band", "get_started"))
}

func TestTierHandler_EvaluatedEvent(t *testing.T) {
	recorder := recordSpans(t)

	tiers := staticTiers{
		{ID: "novice", Name: "Novice", Level: 1,
			Requirements: []domain.TierRequirement{{ExerciseID: "bench_press", TargetWeight: 60, TargetReps: 5}},
			Rewards:      domain.TierRewards{XP: 100, Title: "Rookie"}},
		{ID: "intermediate", Name: "Intermediate", Level: 2,
			Requirements: []domain.TierRequirement{{ExerciseID: "bench_press", TargetWeight: 80, TargetReps: 5}},
			Rewards:      domain.TierRewards{XP: 250, Title: "Contender"}},
	}
	records := staticRecords{{MemberID: "member-1", ExerciseID: "bench_press", Weight: 70, MaxReps: 5}}

	app := fiber.New()
	app.Use(telemetry.FiberMiddleware())
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, "member-1")
		return c.Next()
	})
	app.Get("/me/tiers", NewTierHandler(service.NewTierService(tiers, nil, records, nil)).GetMyTiers)

	status, body := send(t, app, "GET", "/me/tiers", "")
	require.Equal(t, 200, status, body.Error)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	ev, found := eventNamed(spans[0], "tiers.evaluated")
	require.True(t, found)
	assert.Contains(t, ev.Attributes, attribute.Int("tiers.unlocked", 1))
	assert.Contains(t, ev.Attributes, attribute.Int("tiers.current_level", 1))
	assert.Contains(t, ev.Attributes, attribute.Int("tiers.earned_xp", 100))
}
