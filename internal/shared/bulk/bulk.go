// Package bulk runs per-entity operations independently and reports the
// outcome of each item instead of failing the whole batch.
package bulk

import (
	"context"
	"sort"

	"go-manpower/internal/shared/apperror"

	"golang.org/x/sync/errgroup"
)

const (
	ItemStatusSucceeded = "succeeded"
	ItemStatusFailed    = "failed"
)

type ItemResult struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type Report struct {
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Items     []ItemResult `json:"items"`
}

// Run applies fn to every id with at most limit calls in flight. A failing
// item never cancels or rolls back its siblings; fn is expected to commit its
// own unit of work. Items are reported in input order.
func Run(ctx context.Context, ids []string, limit int, fn func(ctx context.Context, id string) error) Report {
	if limit < 1 {
		limit = 1
	}

	results := make([]ItemResult, len(ids))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = failed(id, err)
				return nil
			}
			if err := fn(ctx, id); err != nil {
				results[i] = failed(id, err)
				return nil
			}
			results[i] = ItemResult{ID: id, Status: ItemStatusSucceeded}
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Total: len(ids), Items: results}
	for _, r := range results {
		if r.Status == ItemStatusSucceeded {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}
	return report
}

// Dedupe drops empty and repeated ids while keeping the first occurrence order.
func Dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// FailedIDs lists the ids that did not succeed, sorted.
func (r Report) FailedIDs() []string {
	out := make([]string, 0, r.Failed)
	for _, item := range r.Items {
		if item.Status == ItemStatusFailed {
			out = append(out, item.ID)
		}
	}
	sort.Strings(out)
	return out
}

func failed(id string, err error) ItemResult {
	httpErr := apperror.ToHTTP(err)
	return ItemResult{
		ID:      id,
		Status:  ItemStatusFailed,
		Code:    httpErr.Code,
		Message: httpErr.Message,
	}
}
