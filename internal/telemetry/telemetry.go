// Package telemetry exports traces of battles and game state changes over
// OTLP. Nothing is exported unless an endpoint is configured.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "stickquest"

// Version is reported as service.version and as the tracer version.
var Version = "0.1.0"

// Session describes the running game on the exported resource.
type Session struct {
	Frontend string // "window" or "terminal"
	Seed     int64  // 0 when the roller picked its own seed
}

// Enabled reports whether an OTLP endpoint is configured, either directly or
// derived from the Honeycomb variables at startup.
func Enabled() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != ""
}

// SetLogger routes the SDK's internal diagnostics to l. Higher verbosity
// shows more of the exporter's chatter.
func SetLogger(l *log.Logger, verbosity int) {
	stdr.SetVerbosity(verbosity)
	otel.SetLogger(stdr.New(l))
}

// Setup registers a batching OTLP/HTTP tracer provider as the global one.
// The exporter reads the standard OTEL_EXPORTER_OTLP_* variables. The
// returned function flushes pending spans and must run before exit.
func Setup(ctx context.Context, s Session) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", Version),
			attribute.String("game.frontend", s.Frontend),
			attribute.Int64("game.seed", s.Seed),
		),
	)
	// A detector that fails (no hostname, say) still leaves a usable resource.
	if err != nil && !errors.Is(err, resource.ErrPartialResource) {
		_ = exporter.Shutdown(ctx)
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the tracer for one part of the game, e.g. "battle".
func Tracer(component string) trace.Tracer {
	return otel.Tracer(serviceName+"/"+component, trace.WithInstrumentationVersion(Version))
}
