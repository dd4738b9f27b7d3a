package usecase

import (
	"context"

	"go.uber.org/zap"

	"jobpulse/internal/analytics"
	"jobpulse/internal/dataset"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PostingListParams struct {
	Selection analytics.FilterSelection
	Limit     int
	Offset    int
}

type PostingsUsecase interface {
	ListPostings(ctx context.Context, params PostingListParams) ([]PostingItem, int, error)
}

type Postings struct {
	table  *dataset.Table
	logger *zap.Logger
}

func NewPostingsUsecase(table *dataset.Table, logger *zap.Logger) *Postings {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Postings{table: table, logger: logger}
}

// ListPostings returns one page of filtered rows plus the total match count.
func (u *Postings) ListPostings(_ context.Context, params PostingListParams) ([]PostingItem, int, error) {
	if u.table == nil {
		return nil, 0, ErrDatasetUnavailable
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit < 0 || limit > maxPageSize {
		return nil, 0, ErrInvalidInput
	}
	if params.Offset < 0 {
		return nil, 0, ErrInvalidInput
	}

	subset := analytics.Apply(u.table.All(), params.Selection)
	return collectPostings(subset, limit, params.Offset), subset.Len(), nil
}
