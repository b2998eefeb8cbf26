package history

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"termpong/internal/pong"
)

const tracerName = "termpong/internal/history"

// Traced wraps a store so every call shows up as a span. With no tracer
// provider registered the spans are no-ops.
type Traced struct {
	Store
	tracer trace.Tracer
	driver string
}

func NewTraced(store Store, driver string) *Traced {
	return &Traced{
		Store:  store,
		tracer: otel.Tracer(tracerName),
		driver: driver,
	}
}

func (t *Traced) Append(ctx context.Context, record pong.MatchRecord) error {
	ctx, span := t.tracer.Start(ctx, "history.Append", trace.WithAttributes(
		attribute.String("history.driver", t.driver),
		attribute.String("match.id", record.ID),
		attribute.String("match.winner", record.Winner),
		attribute.Int("match.player_score", record.PlayerScore),
		attribute.Int("match.ai_score", record.AIScore),
	))
	defer span.End()

	err := t.Store.Append(ctx, record)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (t *Traced) LoadRecent(ctx context.Context, n int) ([]pong.MatchRecord, error) {
	ctx, span := t.tracer.Start(ctx, "history.LoadRecent", trace.WithAttributes(
		attribute.String("history.driver", t.driver),
		attribute.Int("history.limit", n),
	))
	defer span.End()

	records, err := t.Store.LoadRecent(ctx, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("history.count", len(records)))
	return records, nil
}
