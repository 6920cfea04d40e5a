package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type observedQuery struct {
	statement string
	failed    bool
}

type recordingObserver struct {
	queries []observedQuery
}

func (o *recordingObserver) ObserveQuery(statement string, _ time.Duration, failed bool) {
	o.queries = append(o.queries, observedQuery{statement: statement, failed: failed})
}

func TestStatementKind(t *testing.T) {
	tests := map[string]string{
		`SELECT * FROM "plots"`:           "select",
		"  insert INTO crops VALUES (1)":  "insert",
		`UPDATE "users" SET name = 'x'`:   "update",
		`DELETE FROM "authentications"`:   "delete",
		`CREATE TABLE "leases" (id text)`: "other",
		"":                                "other",
	}

	for sql, want := range tests {
		assert.Equal(t, want, statementKind(sql), sql)
	}
}

func TestGormSlogLogger_Trace(t *testing.T) {
	observer := &recordingObserver{}
	var fallbackBuf, requestBuf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&fallbackBuf, nil))
	requestLogger := slog.New(slog.NewTextHandler(&requestBuf, nil)).With(slog.String("request_id", "req-1"))

	l := newGormSlogLogger(fallback, false, 50*time.Millisecond, observer)
	sqlFn := func(sql string) func() (string, int64) {
		return func() (string, int64) { return sql, 1 }
	}

	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), sqlFn(`SELECT * FROM "plots"`), gorm.ErrRecordNotFound)
	l.Trace(ctx, time.Now(), sqlFn(`INSERT INTO "crops"`), errors.New("constraint failed"))
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`UPDATE "plots"`), nil)

	assert.Equal(t, []observedQuery{
		{statement: "select", failed: false},
		{statement: "insert", failed: true},
		{statement: "update", failed: false},
	}, observer.queries)

	assert.Contains(t, requestBuf.String(), "Database query failed")
	assert.Contains(t, requestBuf.String(), "request_id=req-1")
	assert.NotContains(t, requestBuf.String(), "plots", "record not found is not logged")
	assert.Contains(t, fallbackBuf.String(), "Slow database query")
}

func TestGormSlogLogger_DefaultThreshold(t *testing.T) {
	l := newGormSlogLogger(slog.New(slog.DiscardHandler), true, 0, nil)

	assert.Equal(t, defaultSlowQueryThreshold, l.slowThreshold)
}
