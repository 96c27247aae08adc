package triage

import (
	"context"
	"strings"
	"time"

	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Hooks let callers observe triage outcomes without coupling the service to
// a metrics backend. Nil fields are skipped.
type Hooks struct {
	OnTriage     func(urgency UrgencyLevel, symptomCount int, duration float64)
	OnEmptyInput func()
}

// Service is the user-facing triage facade. It wraps the pure Engine with
// result IDs, duration accounting, tracing, logging, and metric hooks.
// Stateless across calls; safe for concurrent use.
type Service struct {
	engine  *Engine
	planner *Planner
	logger  log.Logger
	hooks   Hooks
	tracer  trace.Tracer
}

// NewService creates a new triage service.
func NewService(engine *Engine, planner *Planner, logger log.Logger, hooks Hooks) *Service {
	if engine == nil {
		panic(xerrors.New("triage engine is required"))
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Service{
		engine:  engine,
		planner: planner,
		logger:  logger,
		hooks:   hooks,
		tracer:  otel.Tracer("petvet/triage"),
	}
}

// Triage runs the full pipeline over a free-text symptom description. It
// never fails: empty or unrecognized input produces the Low/monitor default.
func (s *Service) Triage(ctx context.Context, text string) *Result {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "triage.Triage")
	defer span.End()

	empty := strings.TrimSpace(text) == ""

	result := s.engine.Run(text)
	result.ID = ulid.Make().String()
	result.CreatedAt = start
	result.Duration = time.Since(start).Seconds()

	span.SetAttributes(
		attribute.String("petvet.triage.id", result.ID),
		attribute.String("petvet.triage.urgency", result.Urgency.String()),
		attribute.String("petvet.triage.vet_type", string(result.VetType)),
		attribute.Int("petvet.triage.symptoms", len(result.Symptoms)),
	)

	if empty {
		s.logger.Info(ctx, "empty description, returning default guidance", "triage_id", result.ID)
		if s.hooks.OnEmptyInput != nil {
			s.hooks.OnEmptyInput()
		}
	}
	if s.hooks.OnTriage != nil {
		s.hooks.OnTriage(result.Urgency, len(result.Symptoms), result.Duration)
	}

	s.logger.Info(ctx, "triage complete",
		"triage_id", result.ID,
		"urgency", result.Urgency.String(),
		"vet_type", string(result.VetType),
		"symptoms", len(result.Symptoms),
	)

	return result
}

// DailyTasks returns the suggested wellness tasks for a species. Returns nil
// if the service was built without a wellness planner.
func (s *Service) DailyTasks(species string) []WellnessTask {
	if s.planner == nil {
		return nil
	}
	return s.planner.DailyTasks(species)
}
