// internal/service/report_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/metrics"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
)

const dateLayout = "2006-01-02"

// DailyStat is one (calendar date, service type) group of send logs.
type DailyStat struct {
	Date        string            `json:"date"`
	ServiceType model.ServiceType `json:"serviceType"`
	Total       int               `json:"total"`
	Sent        int               `json:"sent"`
	Failed      int               `json:"failed"`
}

// StatusCounts breaks one service type's logs down by outcome.
type StatusCounts struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Summary is the global rollup over a window of send logs.
type Summary struct {
	TotalMessages   int                                `json:"totalMessages"`
	SentMessages    int                                `json:"sentMessages"`
	FailedMessages  int                                `json:"failedMessages"`
	UniqueCustomers int                                `json:"uniqueCustomers"`
	ByServiceType   map[model.ServiceType]StatusCounts `json:"byServiceType"`
}

// ReportService derives statistics from the send-log store. Every report is
// recomputed from the store on demand; nothing is cached across requests.
// A pending log counts toward totals but neither sent nor failed.
type ReportService struct {
	SendLogRepo repository.SendLogRepositoryInterface
	Logger      zerolog.Logger
}

// Daily groups the logs in the window by calendar date and service type,
// ordered date descending, service type ascending within a date.
//
// Store errors degrade to an empty report so the dashboards stay readable
// while the database is down; dispatch is where store errors are fatal.
func (s *ReportService) Daily(ctx context.Context, start, end *time.Time) ([]DailyStat, error) {
	metrics.ObserveReport("daily")

	logs, err := s.SendLogRepo.ListByWindow(ctx, start, end)
	if err != nil {
		s.Logger.Error().Err(err).Msg("send log store unreachable, returning empty daily report")
		return []DailyStat{}, nil
	}

	type key struct {
		date        string
		serviceType model.ServiceType
	}
	groups := map[key]*DailyStat{}
	for _, l := range logs {
		k := key{date: l.SentAt.Format(dateLayout), serviceType: l.ServiceType}
		g, ok := groups[k]
		if !ok {
			g = &DailyStat{Date: k.date, ServiceType: k.serviceType}
			groups[k] = g
		}
		g.Total++
		switch l.Status {
		case model.SendStatusSent:
			g.Sent++
		case model.SendStatusFailed:
			g.Failed++
		}
	}

	stats := make([]DailyStat, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, *g)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Date != stats[j].Date {
			return stats[i].Date > stats[j].Date
		}
		return stats[i].ServiceType < stats[j].ServiceType
	})
	return stats, nil
}

// Summary rolls the window up into global and per-service-type counts plus
// the number of distinct customers messaged. An empty window yields zero
// counts and an empty map, not an error.
func (s *ReportService) Summary(ctx context.Context, start, end *time.Time) (*Summary, error) {
	metrics.ObserveReport("summary")

	summary := &Summary{ByServiceType: map[model.ServiceType]StatusCounts{}}

	logs, err := s.SendLogRepo.ListByWindow(ctx, start, end)
	if err != nil {
		s.Logger.Error().Err(err).Msg("send log store unreachable, returning empty summary")
		return summary, nil
	}

	customers := map[int]struct{}{}
	for _, l := range logs {
		summary.TotalMessages++
		customers[l.CustomerID] = struct{}{}

		counts := summary.ByServiceType[l.ServiceType]
		counts.Total++
		switch l.Status {
		case model.SendStatusSent:
			summary.SentMessages++
			counts.Sent++
		case model.SendStatusFailed:
			summary.FailedMessages++
			counts.Failed++
		}
		summary.ByServiceType[l.ServiceType] = counts
	}
	summary.UniqueCustomers = len(customers)
	return summary, nil
}
