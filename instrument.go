package sburger

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/rbaliyan/sburger"

var (
	attrEncode = attribute.String("sburger.operation", "encode")
	attrDecode = attribute.String("sburger.operation", "decode")
)

type instruments struct {
	tracer trace.Tracer
	ops    metric.Int64Counter
	blocks metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider, tp trace.TracerProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)

	ops, err := meter.Int64Counter("sburger.codec.operations",
		metric.WithDescription("Number of codec encode and decode calls."),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("sburger: failed to create operations counter: %w", err)
	}

	blocks, err := meter.Int64Counter("sburger.codec.blocks",
		metric.WithDescription("Number of 32-byte blocks transformed by the codec."),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return nil, fmt.Errorf("sburger: failed to create blocks counter: %w", err)
	}

	return &instruments{
		tracer: tp.Tracer(instrumentationName),
		ops:    ops,
		blocks: blocks,
	}, nil
}

func (in *instruments) start(ctx context.Context, name string, op attribute.KeyValue, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return in.tracer.Start(ctx, name, trace.WithAttributes(append(attrs, op)...))
}

// end records the outcome of one operation and ends its span.
func (in *instruments) end(ctx context.Context, span trace.Span, op attribute.KeyValue, blocks int, err error) {
	defer span.End()

	in.ops.Add(ctx, 1, metric.WithAttributes(op, attribute.Bool("error", err != nil)))
	if blocks > 0 {
		in.blocks.Add(ctx, int64(blocks), metric.WithAttributes(op))
		span.SetAttributes(attribute.Int("sburger.blocks", blocks))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
