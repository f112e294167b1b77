package bulk_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"go-manpower/internal/shared/apperror"
	"go-manpower/internal/shared/bulk"

	"github.com/stretchr/testify/assert"
)

var errMissing = apperror.New(apperror.CodeNotFound, "employee not found", http.StatusNotFound)

func TestRun_PartialFailureKeepsSuccesses(t *testing.T) {
	var applied atomic.Int32
	report := bulk.Run(context.Background(), []string{"e1", "e2", "e3"}, 2, func(ctx context.Context, id string) error {
		if id == "e2" {
			return errMissing
		}
		applied.Add(1)
		return nil
	})

	assert.Equal(t, int32(2), applied.Load())
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{"e2"}, report.FailedIDs())

	assert.Equal(t, "e1", report.Items[0].ID)
	assert.Equal(t, bulk.ItemStatusSucceeded, report.Items[0].Status)
	assert.Equal(t, bulk.ItemStatusFailed, report.Items[1].Status)
	assert.Equal(t, apperror.CodeNotFound, report.Items[1].Code)
	assert.Equal(t, "employee not found", report.Items[1].Message)
}

func TestRun_UnknownErrorIsHidden(t *testing.T) {
	report := bulk.Run(context.Background(), []string{"x"}, 0, func(ctx context.Context, id string) error {
		return errors.New("pq: deadlock detected")
	})
	assert.Equal(t, apperror.CodeInternalError, report.Items[0].Code)
	assert.Equal(t, "Internal server error", report.Items[0].Message)
}

func TestRun_CanceledContextFailsRemainingItems(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	report := bulk.Run(ctx, []string{"a", "b"}, 1, func(ctx context.Context, id string) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.Equal(t, 2, report.Failed)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, bulk.Dedupe([]string{"a", "", "b", "a"}))
}
