package repository

import (
	"fmt"
	"log/slog"
)

const (
	IDField        QueryField = "id"
	CategoryField  QueryField = "category"
	SortField      QueryField = "sort"
	StatusField    QueryField = "status"
	CreatedAtField QueryField = "created_at"
)

type Query struct {
	Values map[QueryField]string

	Limit int

	Paginator *Paginator
}

type QueryField string

func NewQuery() *Query {
	return &Query{
		Values: map[QueryField]string{},
	}
}

func (q *Query) With(field QueryField, val string) *Query {
	q.Values[field] = val
	return q
}

// Value returns the filter set for field, or "" when there is none.
func (q Query) Value(field QueryField) string {
	return q.Values[field]
}

func (q *Query) ApplyPagination(limit int32, token string) error {
	queryLimit := DefaultPaginationLimit
	if limit > 0 {
		queryLimit = min(maxPaginationLimit, int(limit))
	}
	q.Limit = queryLimit

	if token == "" {
		return nil
	}

	paginator, err := DecodePageToken(token)
	if err != nil {
		slog.Error("failed to decode page token", slog.Any("err", err), slog.String("token", token))
		return fmt.Errorf("invalid page token: %w", ErrInvalidPaginationToken)
	}
	q.Paginator = paginator
	return nil
}

// AfterID is the id the next page starts after, 0 for the first page.
func (q Query) AfterID() int {
	if q.Paginator == nil {
		return 0
	}
	return q.Paginator.LastID
}
