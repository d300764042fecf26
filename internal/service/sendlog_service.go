// internal/service/sendlog_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	appErrors "github.com/Abubaker23alluhaibi/isbyanSystem/internal/errors"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
)

// SendLogPage is one page of the filtered send-log listing.
type SendLogPage struct {
	Logs        []repository.SendLogWithCustomer `json:"logs"`
	Total       int                              `json:"total"`
	TotalPages  int                              `json:"totalPages"`
	CurrentPage int                              `json:"currentPage"`
}

// AggregatedRow is one (date, service type, status) group with its count.
type AggregatedRow struct {
	Date        string            `json:"date"`
	ServiceType model.ServiceType `json:"serviceType"`
	Status      string            `json:"status"`
	Count       int               `json:"count"`
}

// SendLogService exposes the raw send-log browsing endpoints.
type SendLogService struct {
	SendLogRepo repository.SendLogRepositoryInterface
	Logger      zerolog.Logger
}

// List returns a filtered, paginated page of send logs, newest first.
// Unlike the reports, a store error surfaces here: a silently empty page
// would be indistinguishable from real data.
func (s *SendLogService) List(ctx context.Context, f repository.SendLogFilter) (*SendLogPage, error) {
	if f.ServiceType != "" && !f.ServiceType.Valid() {
		return nil, appErrors.NewValidation("unrecognized service type: %s", f.ServiceType)
	}
	if f.Status != "" && f.Status != model.SendStatusPending && f.Status != model.SendStatusSent && f.Status != model.SendStatusFailed {
		return nil, appErrors.NewValidation("unrecognized status: %s", f.Status)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		f.Limit = 200
	}

	logs, total, err := s.SendLogRepo.List(ctx, f)
	if err != nil {
		return nil, appErrors.NewStoreUnavailable(err)
	}

	return &SendLogPage{
		Logs:        logs,
		Total:       total,
		TotalPages:  (total + f.Limit - 1) / f.Limit,
		CurrentPage: f.Page,
	}, nil
}

// Aggregated groups the logs in the window by (date, service type, status),
// ordered date descending, then service type and status ascending.
func (s *SendLogService) Aggregated(ctx context.Context, start, end *time.Time) ([]AggregatedRow, error) {
	logs, err := s.SendLogRepo.ListByWindow(ctx, start, end)
	if err != nil {
		s.Logger.Error().Err(err).Msg("send log store unreachable, returning empty aggregation")
		return []AggregatedRow{}, nil
	}

	type key struct {
		date        string
		serviceType model.ServiceType
		status      string
	}
	counts := map[key]int{}
	for _, l := range logs {
		counts[key{l.SentAt.Format(dateLayout), l.ServiceType, l.Status}]++
	}

	rows := make([]AggregatedRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, AggregatedRow{Date: k.date, ServiceType: k.serviceType, Status: k.status, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		if rows[i].ServiceType != rows[j].ServiceType {
			return rows[i].ServiceType < rows[j].ServiceType
		}
		return rows[i].Status < rows[j].Status
	})
	return rows, nil
}
