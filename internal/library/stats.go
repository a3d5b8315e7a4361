package library

import "context"

// FinanceStats provides the figures displayed by the finance menu.
type FinanceStats interface {
	PendingFines(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (int64, error)
}

// StaticFinanceStats serves fixed figures.
type StaticFinanceStats struct {
	Fines   int
	Revenue int64
}

// PendingFines implements FinanceStats.
func (s *StaticFinanceStats) PendingFines(ctx context.Context) (int, error) {
	return s.Fines, nil
}

// TotalRevenue implements FinanceStats.
func (s *StaticFinanceStats) TotalRevenue(ctx context.Context) (int64, error) {
	return s.Revenue, nil
}

var _ FinanceStats = &StaticFinanceStats{}
