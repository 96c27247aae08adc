package triage

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/linnemanlabs/go-core/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testService(t *testing.T, hooks Hooks) *Service {
	t.Helper()
	rs := testRuleset()
	engine, err := NewEngine(rs)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewService(engine, NewPlanner(rs), log.Nop(), hooks)
}

func TestTriage_ResultMetadata(t *testing.T) {
	t.Parallel()

	svc := testService(t, Hooks{})
	r := svc.Triage(context.Background(), "my dog is vomiting")

	if len(r.ID) != 26 {
		t.Errorf("ID = %q, want a 26-char ULID", r.ID)
	}
	if r.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if r.Duration < 0 {
		t.Errorf("Duration = %f, want >= 0", r.Duration)
	}
	if r.Urgency != Medium {
		t.Errorf("urgency = %s, want MEDIUM", r.Urgency)
	}

	// a second call gets a fresh ID
	r2 := svc.Triage(context.Background(), "my dog is vomiting")
	if r2.ID == r.ID {
		t.Error("expected distinct IDs per call")
	}
}

func TestTriage_Hooks(t *testing.T) {
	t.Parallel()

	var (
		gotUrgency  UrgencyLevel
		gotSymptoms int
		emptyCalls  int
	)
	svc := testService(t, Hooks{
		OnTriage: func(u UrgencyLevel, symptomCount int, _ float64) {
			gotUrgency = u
			gotSymptoms = symptomCount
		},
		OnEmptyInput: func() { emptyCalls++ },
	})

	svc.Triage(context.Background(), "vomiting and bleeding")
	if gotUrgency != High {
		t.Errorf("hook urgency = %s, want HIGH", gotUrgency)
	}
	if gotSymptoms != 2 {
		t.Errorf("hook symptom count = %d, want 2", gotSymptoms)
	}
	if emptyCalls != 0 {
		t.Errorf("empty hook fired %d times, want 0", emptyCalls)
	}

	svc.Triage(context.Background(), "   ")
	if emptyCalls != 1 {
		t.Errorf("empty hook fired %d times, want 1", emptyCalls)
	}
}

func TestTriage_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	rs := testRuleset()
	engine, err := NewEngine(rs)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	svc := NewService(engine, NewPlanner(rs), log.Nop(), m.Hooks())

	svc.Triage(context.Background(), "bleeding badly")
	svc.Triage(context.Background(), "bleeding badly")
	svc.Triage(context.Background(), "")

	if got := testutil.ToFloat64(m.TriagesTotal.WithLabelValues("HIGH")); got != 2 {
		t.Errorf("HIGH triages = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.TriagesTotal.WithLabelValues("LOW")); got != 1 {
		t.Errorf("LOW triages = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.EmptyInputsTotal); got != 1 {
		t.Errorf("empty inputs = %v, want 1", got)
	}
}

func TestTriage_Tracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	svc := testService(t, Hooks{})
	svc.Triage(context.Background(), "my cat is bleeding")

	// other tests may record spans on the global provider concurrently, so
	// look for ours instead of assuming it is the only one
	var found bool
	for _, span := range sr.Ended() {
		if span.Name() != "triage.Triage" {
			continue
		}
		for _, attr := range span.Attributes() {
			if string(attr.Key) == "petvet.triage.urgency" && attr.Value.AsString() == "HIGH" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected a triage.Triage span with petvet.triage.urgency=HIGH")
	}
}

// The service holds no mutable state, so concurrent callers must be safe
// without locking and must leak no goroutines (see TestMain).
func TestTriage_ConcurrentCallers(t *testing.T) {
	svc := testService(t, Hooks{})

	inputs := []string{
		"my dog is vomiting for days",
		"bleeding paw",
		"a bit tired",
		"",
		"nothing recognizable here",
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for _, text := range inputs {
			wg.Add(1)
			go func(text string) {
				defer wg.Done()
				r := svc.Triage(context.Background(), text)
				if len(r.Actions) == 0 {
					t.Errorf("Triage(%q): empty actions", text)
				}
				if r.Disclaimer == "" {
					t.Errorf("Triage(%q): missing disclaimer", text)
				}
			}(text)
		}
	}
	wg.Wait()
}

func TestNewService_NilLogger(t *testing.T) {
	t.Parallel()

	rs := testRuleset()
	engine, err := NewEngine(rs)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	svc := NewService(engine, nil, nil, Hooks{})
	r := svc.Triage(context.Background(), "vomit")
	if r.Urgency != Medium {
		t.Errorf("urgency = %s, want MEDIUM", r.Urgency)
	}
	if tasks := svc.DailyTasks("dog"); tasks != nil {
		t.Errorf("DailyTasks without planner = %v, want nil", tasks)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil engine")
		}
	}()
	NewService(nil, nil, nil, Hooks{})
}

func TestTriage_EmptyInputContract(t *testing.T) {
	t.Parallel()

	svc := testService(t, Hooks{})
	r := svc.Triage(context.Background(), " \t\n")

	if r.Urgency != Low {
		t.Errorf("urgency = %s, want LOW", r.Urgency)
	}
	if r.VetType != TierMonitor {
		t.Errorf("vet_type = %s, want monitor", r.VetType)
	}
	var sawDetail bool
	for _, a := range r.Actions {
		if strings.Contains(a, "more detail") {
			sawDetail = true
		}
	}
	if !sawDetail {
		t.Errorf("actions = %v, want a request for more detail", r.Actions)
	}
}
