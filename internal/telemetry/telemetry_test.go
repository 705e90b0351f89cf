package telemetry

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestEnabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	if Enabled() {
		t.Error("Enabled() = true with no endpoint")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://localhost:4318/v1/traces")
	if !Enabled() {
		t.Error("Enabled() = false with a traces endpoint set")
	}
}

func TestTracerScope(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))

	_, span := Tracer("battle").Start(context.Background(), "battle.start")
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	scope := ended[0].InstrumentationScope()
	if scope.Name != "stickquest/battle" {
		t.Errorf("scope name = %q, want %q", scope.Name, "stickquest/battle")
	}
	if scope.Version != Version {
		t.Errorf("scope version = %q, want %q", scope.Version, Version)
	}
}

func TestSetupAndShutdown(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	SetLogger(log.New(io.Discard, "", 0), 0)
	// Nothing is sent: the exporter only dials when a batch is flushed.
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:1")

	shutdown, err := Setup(context.Background(), Session{Frontend: "terminal", Seed: 7})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}
