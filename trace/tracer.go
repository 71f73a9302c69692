// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/trace/noop"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	exportTimeout = 10 * time.Second
	// longer than [exportTimeout] so in-flight exports can finish
	shutdownTimeout = 15 * time.Second
)

// Tracer is an [oteltrace.Tracer] that must be closed to flush its spans.
type Tracer interface {
	oteltrace.Tracer
	Close() error
}

type Config struct {
	Enabled bool `json:"enabled"`

	// The fraction of traces to sample. >= 1 always samples, <= 0 never
	// samples.
	SampleRate float64 `json:"sampleRate"`

	// Zipkin collector receiving the spans.
	Endpoint string `json:"endpoint"`

	AppName string `json:"appName"`
	Version string `json:"version"`
}

type noopTracer struct {
	oteltrace.Tracer
}

func (noopTracer) Close() error {
	return nil
}

type tracer struct {
	oteltrace.Tracer

	tp *sdktrace.TracerProvider
}

func (t *tracer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return t.tp.Shutdown(ctx)
}

// New returns a tracer exporting to [Config.Endpoint], or a noop tracer when
// tracing is disabled.
func New(config *Config) (Tracer, error) {
	if !config.Enabled {
		return noopTracer{
			Tracer: noop.NewTracerProvider().Tracer(config.AppName),
		}, nil
	}

	exporter, err := zipkin.New(config.Endpoint)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(exportTimeout)),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("version", config.Version),
				semconv.ServiceNameKey.String(config.AppName),
			),
		),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.SampleRate)),
	)
	return &tracer{
		Tracer: tp.Tracer(config.AppName),
		tp:     tp,
	}, nil
}
