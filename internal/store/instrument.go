package store

import (
	"context"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Instrument wraps s so every table call opens a span and is counted in
// the store operations metric.
func Instrument(s Store, backend string) Store {
	return &instrumented{Store: s, backend: backend}
}

type instrumented struct {
	Store
	backend string
}

func (s *instrumented) Beneficiaries() BeneficiaryTable {
	return instrumentedBeneficiaries{inner: s.Store.Beneficiaries(), backend: s.backend}
}

func (s *instrumented) Activities() ActivityTable {
	return instrumentedActivities{inner: s.Store.Activities(), backend: s.backend}
}

func observe(ctx context.Context, backend, table, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	attrs = append(attrs,
		attribute.String("store.backend", backend),
		attribute.String("store.table", table),
		attribute.String("store.operation", op),
	)
	ctx, span := otel.Tracer("store").Start(ctx, "store."+table+"."+op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		observability.StoreOperations.WithLabelValues(table, op, status).Inc()
		span.End()
	}
}

type instrumentedBeneficiaries struct {
	inner   BeneficiaryTable
	backend string
}

func (t instrumentedBeneficiaries) SelectAll(ctx context.Context) (rows []models.Beneficiary, err error) {
	ctx, done := observe(ctx, t.backend, TableBeneficiaries, "select")
	defer func() { done(err) }()
	return t.inner.SelectAll(ctx)
}

func (t instrumentedBeneficiaries) Insert(ctx context.Context, b models.Beneficiary) (row models.Beneficiary, err error) {
	ctx, done := observe(ctx, t.backend, TableBeneficiaries, "insert")
	defer func() { done(err) }()
	return t.inner.Insert(ctx, b)
}

func (t instrumentedBeneficiaries) Update(ctx context.Context, id string, b models.Beneficiary) (row models.Beneficiary, err error) {
	ctx, done := observe(ctx, t.backend, TableBeneficiaries, "update", attribute.String("store.id", id))
	defer func() { done(err) }()
	return t.inner.Update(ctx, id, b)
}

func (t instrumentedBeneficiaries) Delete(ctx context.Context, id string) (err error) {
	ctx, done := observe(ctx, t.backend, TableBeneficiaries, "delete", attribute.String("store.id", id))
	defer func() { done(err) }()
	return t.inner.Delete(ctx, id)
}

func (t instrumentedBeneficiaries) SetNutritionFlag(ctx context.Context, ids []string, flag bool) (err error) {
	ctx, done := observe(ctx, t.backend, TableBeneficiaries, "set_nutrition",
		attribute.Int("store.batch_size", len(ids)),
		attribute.Bool("store.flag", flag),
	)
	defer func() { done(err) }()
	return t.inner.SetNutritionFlag(ctx, ids, flag)
}

type instrumentedActivities struct {
	inner   ActivityTable
	backend string
}

func (t instrumentedActivities) SelectAll(ctx context.Context) (rows []models.Activity, err error) {
	ctx, done := observe(ctx, t.backend, TableActivities, "select")
	defer func() { done(err) }()
	return t.inner.SelectAll(ctx)
}

func (t instrumentedActivities) Insert(ctx context.Context, a models.Activity) (row models.Activity, err error) {
	ctx, done := observe(ctx, t.backend, TableActivities, "insert", attribute.String("activity.type", string(a.Type)))
	defer func() { done(err) }()
	return t.inner.Insert(ctx, a)
}

func (t instrumentedActivities) Update(ctx context.Context, id string, a models.Activity) (row models.Activity, err error) {
	ctx, done := observe(ctx, t.backend, TableActivities, "update", attribute.String("store.id", id))
	defer func() { done(err) }()
	return t.inner.Update(ctx, id, a)
}

func (t instrumentedActivities) Delete(ctx context.Context, id string) (err error) {
	ctx, done := observe(ctx, t.backend, TableActivities, "delete", attribute.String("store.id", id))
	defer func() { done(err) }()
	return t.inner.Delete(ctx, id)
}

func (t instrumentedActivities) CompleteRaffle(ctx context.Context, id, winnerID string) (row models.Activity, err error) {
	ctx, done := observe(ctx, t.backend, TableActivities, "complete_raffle", attribute.String("store.id", id))
	defer func() { done(err) }()
	return t.inner.CompleteRaffle(ctx, id, winnerID)
}
