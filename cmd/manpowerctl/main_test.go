package main

import (
	"bytes"
	"context"
	"testing"

	"go-manpower/internal/app"
	"go-manpower/internal/employee"
	employeemock "go-manpower/internal/employee/mock"
	"go-manpower/internal/manpower"
	manpowererrors "go-manpower/internal/manpower/errors"
	manpowermock "go-manpower/internal/manpower/mock"
	"go-manpower/internal/shared/apperror"
	"go-manpower/internal/shared/bulk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type ctlDeps struct {
	manpower  *manpowermock.MockService
	employees *employeemock.MockService
}

func runCtl(t *testing.T, args ...string) (ctlDeps, func() (string, error)) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := ctlDeps{
		manpower:  manpowermock.NewMockService(ctrl),
		employees: employeemock.NewMockService(ctrl),
	}
	open := func() (*cli, error) {
		return &cli{
			container: &app.Container{Services: &app.Services{Manpower: deps.manpower, Employee: deps.employees}},
			logger:    zap.NewNop(),
			ctx:       context.Background(),
		}, nil
	}
	t.Cleanup(func() { ctl = nil })

	return deps, func() (string, error) {
		var out bytes.Buffer
		root := newRootCmd(open)
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		err := root.Execute()
		return out.String(), err
	}
}

func TestRank(t *testing.T) {
	t.Run("prints ranked candidates", func(t *testing.T) {
		deps, run := runCtl(t, "rank", "req-1", "--company", "co-1")
		deps.manpower.EXPECT().Candidates(gomock.Any(), "co-1", "req-1").Return(manpower.CandidatesResponse{
			Request: manpower.RequestResponse{Number: "MPR-000001", SubSectionName: "Loader", ShiftName: "Pagi", Date: "2024-06-01"},
			Candidates: []manpower.CandidateResponse{
				{NIK: "N-001", FullName: "Ayu", TotalScore: "0.9000"},
			},
			Excluded: []manpower.ExcludedResponse{{EmployeeID: "emp-c", Reason: manpower.ReasonDeactivated}},
		}, nil)

		out, err := run()

		require.NoError(t, err)
		assert.Contains(t, out, "MPR-000001  Loader / Pagi / 2024-06-01")
		assert.Contains(t, out, "N-001")
		assert.Contains(t, out, "0.9000")
		assert.Contains(t, out, "emp-c  deactivated")
	})

	t.Run("company is required", func(t *testing.T) {
		_, run := runCtl(t, "rank", "req-1")

		_, err := run()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--company is required for rank")
	})

	t.Run("service errors carry their code", func(t *testing.T) {
		deps, run := runCtl(t, "rank", "req-1", "-c", "co-1")
		deps.manpower.EXPECT().Candidates(gomock.Any(), "co-1", "req-1").Return(manpower.CandidatesResponse{}, manpowererrors.ErrRequestNotFound)

		_, err := run()

		require.Error(t, err)
		assert.Contains(t, err.Error(), apperror.CodeNotFound)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("passes range and actor", func(t *testing.T) {
		deps, run := runCtl(t, "generate", "-c", "co-1", "--actor", "ops", "--from", "2024-06-01", "--to", "2024-06-02")
		deps.manpower.EXPECT().
			Generate(gomock.Any(), "co-1", "ops", manpower.GenerateRequest{From: "2024-06-01", To: "2024-06-02"}).
			Return(manpower.GenerateReport{
				Created: 1, Skipped: 1,
				Items: []manpower.GeneratedItem{
					{Date: "2024-06-01", Status: manpower.GeneratedCreated, Number: "MPR-000007"},
					{Date: "2024-06-02", Status: manpower.GeneratedSkipped},
				},
			}, nil)

		out, err := run()

		require.NoError(t, err)
		assert.Contains(t, out, "+ 2024-06-01  MPR-000007")
		assert.Contains(t, out, "= 2024-06-02  already requested")
		assert.Contains(t, out, "created=1 skipped=1 failed=0")
	})

	t.Run("range flags are required", func(t *testing.T) {
		_, run := runCtl(t, "generate", "-c", "co-1", "--from", "2024-06-01")

		_, err := run()

		assert.Error(t, err)
	})
}

func TestResetStatuses(t *testing.T) {
	t.Run("no ids resets everyone", func(t *testing.T) {
		deps, run := runCtl(t, "reset-statuses", "-c", "co-1")
		deps.employees.EXPECT().
			BulkResetStatuses(gomock.Any(), "co-1", "manpowerctl", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, req employee.BulkResetStatusesRequest) (bulk.Report, error) {
				assert.Empty(t, req.EmployeeIDs)
				return bulk.Report{Total: 3, Succeeded: 3}, nil
			})

		out, err := run()

		require.NoError(t, err)
		assert.Contains(t, out, "total=3 succeeded=3 failed=0")
	})

	t.Run("reports failed items", func(t *testing.T) {
		deps, run := runCtl(t, "reset-statuses", "-c", "co-1", "e1", "e2")
		deps.employees.EXPECT().
			BulkResetStatuses(gomock.Any(), "co-1", "manpowerctl", employee.BulkResetStatusesRequest{EmployeeIDs: []string{"e1", "e2"}}).
			Return(bulk.Report{
				Total: 2, Succeeded: 1, Failed: 1,
				Items: []bulk.ItemResult{
					{ID: "e1", Status: bulk.ItemStatusSucceeded},
					{ID: "e2", Status: bulk.ItemStatusFailed, Code: apperror.CodeNotFound, Message: "Employee not found"},
				},
			}, nil)

		out, err := run()

		require.NoError(t, err)
		assert.Contains(t, out, "! e2  "+apperror.CodeNotFound+": Employee not found")
		assert.Contains(t, out, "total=2 succeeded=1 failed=1")
	})
}
