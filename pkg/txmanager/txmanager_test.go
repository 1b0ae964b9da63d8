package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellemadame/booking-service/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) Commit() error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

// fakeBeginner hands out one transaction per attempt, with commit failing
// according to commitErrs (nil past the end of the slice).
type fakeBeginner struct {
	begins     int
	commitErrs []error
	lastOpts   *sql.TxOptions
}

func (f *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if f.begins < len(f.commitErrs) {
		commitErr = f.commitErrs[f.begins]
	}
	f.begins++
	f.lastOpts = opts
	return &fakeTx{commitErr: commitErr}, nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_RetriesCommitConflict(t *testing.T) {
	beginner := &fakeBeginner{
		commitErrs: []error{serializationFailure(), serializationFailure()},
	}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err, "third attempt commits cleanly")
	assert.Equal(t, 3, beginner.begins)
	assert.Equal(t, 3, calls, "the whole function reruns per attempt")
	assert.Equal(t, sql.LevelSerializable, beginner.lastOpts.Isolation)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	beginner := &fakeBeginner{
		commitErrs: []error{serializationFailure(), serializationFailure(), serializationFailure()},
	}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, beginner.begins)
	assert.ErrorIs(t, err, ErrTransaction)

	// The pq cause survives the wrapping
	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

func TestDoSerializable_RetriesWrappedFnError(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("load bookings: %w", serializationFailure())
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.begins, "a wrapped serialization failure from the function is retried")
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	fnErr := errors.New("constraint violation")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.Equal(t, 1, beginner.begins)
}
