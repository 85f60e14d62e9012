package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/infrastructure/repository/memory"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

var (
	spanExporter     *tracetest.InMemoryExporter
	spanProvider     *sdktrace.TracerProvider
	installProviders sync.Once
)

// parentSpanContext installs an in-memory provider once for the package and starts a parent span,
// since usecase spans are only created under one.
func parentSpanContext(t *testing.T) (context.Context, trace.Span) {
	t.Helper()

	installProviders.Do(func() {
		spanExporter = tracetest.NewInMemoryExporter()
		spanProvider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(spanExporter))
		otel.SetTracerProvider(spanProvider)
	})
	return spanProvider.Tracer("usecase-test").Start(context.Background(), "test.parent")
}

func childSpan(t *testing.T, parent trace.Span, name string) tracetest.SpanStub {
	t.Helper()

	for _, stub := range spanExporter.GetSpans() {
		if stub.Name == name && stub.Parent.SpanID() == parent.SpanContext().SpanID() {
			return stub
		}
	}
	t.Fatalf("span %q under parent %s not recorded", name, parent.SpanContext().SpanID())
	return tracetest.SpanStub{}
}

func TestStartUsecaseSpan_NoParent(t *testing.T) {
	ctx := context.Background()

	got, span := startUsecaseSpan(ctx, "usecase.Test")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected context to be returned unchanged without a parent span")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected non-recording span without a parent")
	}
}

func TestFailSpan_ReturnsError(t *testing.T) {
	_, span := startUsecaseSpan(context.Background(), "usecase.Test")

	boom := errors.New("boom")
	if err := failSpan(span, boom); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := failSpan(span, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestImportService_EarlyFailuresMarkSpan(t *testing.T) {
	loadErr := errors.New("csv unreadable")

	tests := []struct {
		name  string
		input ImportInput
	}{
		{
			name:  "missing loaders",
			input: ImportInput{},
		},
		{
			name: "player loader fails",
			input: ImportInput{
				Players: func(context.Context) ([]player.Player, error) { return nil, loadErr },
				Teams:   staticTeams(nil),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, parent := parentSpanContext(t)
			playerRepo := memory.NewPlayerRepository(nil)
			service := NewImportService(playerRepo, playerRepo, memory.NewTeamRepository(nil), nil)

			if _, err := service.Import(ctx, tt.input); err == nil {
				t.Fatalf("expected import error")
			}
			parent.End()

			stub := childSpan(t, parent, "usecase.ImportService.Import")
			if stub.Status.Code != codes.Error {
				t.Fatalf("expected error status, got %v", stub.Status.Code)
			}
			if len(stub.Events) == 0 {
				t.Fatalf("expected recorded error event")
			}
		})
	}
}
