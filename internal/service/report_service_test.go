package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

func mkLog(customerID int, serviceType model.ServiceType, status, sentAt string) model.SendLog {
	ts, err := time.Parse(time.RFC3339, sentAt)
	if err != nil {
		panic(err)
	}
	return model.SendLog{
		ID:          sentAt + "/" + status,
		CustomerID:  customerID,
		ServiceType: serviceType,
		MessageText: "مرحباً",
		Status:      status,
		SentAt:      ts,
	}
}

func newReportService(logs *fakeSendLogRepo) *service.ReportService {
	return &service.ReportService{SendLogRepo: logs, Logger: zerolog.Nop()}
}

func TestDailyGroupsByDateAndOrdersDescending(t *testing.T) {
	logs := &fakeSendLogRepo{logs: []model.SendLog{
		mkLog(1, model.ServiceTypeRepairFixed, model.SendStatusSent, "2024-01-01T09:00:00Z"),
		mkLog(2, model.ServiceTypeRepairFixed, model.SendStatusSent, "2024-01-01T17:30:00Z"),
		mkLog(3, model.ServiceTypeRepairFixed, model.SendStatusFailed, "2024-01-02T08:00:00Z"),
	}}
	svc := newReportService(logs)

	stats, err := svc.Daily(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "2024-01-02", stats[0].Date)
	assert.Equal(t, model.ServiceTypeRepairFixed, stats[0].ServiceType)
	assert.Equal(t, 1, stats[0].Total)
	assert.Equal(t, 0, stats[0].Sent)
	assert.Equal(t, 1, stats[0].Failed)

	assert.Equal(t, "2024-01-01", stats[1].Date)
	assert.Equal(t, 2, stats[1].Total)
	assert.Equal(t, 2, stats[1].Sent)
	assert.Equal(t, 0, stats[1].Failed)
}

func TestDailyTieBreakIsDeterministic(t *testing.T) {
	logs := &fakeSendLogRepo{logs: []model.SendLog{
		mkLog(1, model.ServiceTypeRepairUnfixed, model.SendStatusSent, "2024-03-10T10:00:00Z"),
		mkLog(2, model.ServiceTypeSale, model.SendStatusSent, "2024-03-10T11:00:00Z"),
		mkLog(3, model.ServiceTypeRepairFixed, model.SendStatusSent, "2024-03-10T12:00:00Z"),
	}}
	svc := newReportService(logs)

	first, err := svc.Daily(context.Background(), nil, nil)
	require.NoError(t, err)
	second, err := svc.Daily(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	// Within one date the groups come back in ascending label order.
	assert.True(t, first[0].ServiceType < first[1].ServiceType)
	assert.True(t, first[1].ServiceType < first[2].ServiceType)
}

func TestSummaryCountsAndUniqueCustomers(t *testing.T) {
	logs := &fakeSendLogRepo{logs: []model.SendLog{
		mkLog(1, model.ServiceTypeSale, model.SendStatusSent, "2024-02-01T10:00:00Z"),
		mkLog(1, model.ServiceTypeSale, model.SendStatusFailed, "2024-02-02T10:00:00Z"),
		mkLog(2, model.ServiceTypeRepairFixed, model.SendStatusSent, "2024-02-03T10:00:00Z"),
		mkLog(3, model.ServiceTypeRepairFixed, model.SendStatusSent, "2024-02-03T11:00:00Z"),
	}}
	svc := newReportService(logs)

	summary, err := svc.Summary(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalMessages)
	assert.Equal(t, 3, summary.SentMessages)
	assert.Equal(t, 1, summary.FailedMessages)
	assert.Equal(t, 3, summary.UniqueCustomers)

	require.Len(t, summary.ByServiceType, 2)
	assert.Equal(t, service.StatusCounts{Total: 2, Sent: 1, Failed: 1}, summary.ByServiceType[model.ServiceTypeSale])
	assert.Equal(t, service.StatusCounts{Total: 2, Sent: 2, Failed: 0}, summary.ByServiceType[model.ServiceTypeRepairFixed])
}

func TestPendingCountsTowardTotalOnly(t *testing.T) {
	logs := &fakeSendLogRepo{logs: []model.SendLog{
		mkLog(1, model.ServiceTypeSale, model.SendStatusPending, "2024-02-01T10:00:00Z"),
	}}
	svc := newReportService(logs)

	summary, err := svc.Summary(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalMessages)
	assert.Equal(t, 0, summary.SentMessages)
	assert.Equal(t, 0, summary.FailedMessages)
	assert.Equal(t, service.StatusCounts{Total: 1}, summary.ByServiceType[model.ServiceTypeSale])

	stats, err := svc.Daily(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Total)
	assert.Equal(t, 0, stats[0].Sent)
	assert.Equal(t, 0, stats[0].Failed)
}

func TestDailySumsMatchSummary(t *testing.T) {
	logs := &fakeSendLogRepo{logs: []model.SendLog{
		mkLog(1, model.ServiceTypeSale, model.SendStatusSent, "2024-02-01T10:00:00Z"),
		mkLog(2, model.ServiceTypeSale, model.SendStatusFailed, "2024-02-01T11:00:00Z"),
		mkLog(3, model.ServiceTypeRepairUnfixed, model.SendStatusSent, "2024-02-02T10:00:00Z"),
		mkLog(4, model.ServiceTypeMaintenanceReport, model.SendStatusPending, "2024-02-03T10:00:00Z"),
		mkLog(1, model.ServiceTypeRepairFixed, model.SendStatusSent, "2024-02-04T10:00:00Z"),
	}}
	svc := newReportService(logs)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 3, 23, 59, 59, 0, time.UTC)

	stats, err := svc.Daily(context.Background(), &start, &end)
	require.NoError(t, err)
	summary, err := svc.Summary(context.Background(), &start, &end)
	require.NoError(t, err)

	var total, sent, failed int
	for _, s := range stats {
		total += s.Total
		sent += s.Sent
		failed += s.Failed
	}
	assert.Equal(t, summary.TotalMessages, total)
	assert.Equal(t, summary.SentMessages, sent)
	assert.Equal(t, summary.FailedMessages, failed)
}

func TestEmptyWindowYieldsZeroShapes(t *testing.T) {
	logs := &fakeSendLogRepo{logs: []model.SendLog{
		mkLog(1, model.ServiceTypeSale, model.SendStatusSent, "2024-02-01T10:00:00Z"),
	}}
	svc := newReportService(logs)

	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)

	stats, err := svc.Daily(context.Background(), &start, &end)
	require.NoError(t, err)
	assert.Empty(t, stats)

	summary, err := svc.Summary(context.Background(), &start, &end)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalMessages)
	assert.Equal(t, 0, summary.SentMessages)
	assert.Equal(t, 0, summary.FailedMessages)
	assert.Equal(t, 0, summary.UniqueCustomers)
	require.NotNil(t, summary.ByServiceType)
	assert.Empty(t, summary.ByServiceType)
}

func TestReportsAreIdempotent(t *testing.T) {
	logs := &fakeSendLogRepo{logs: []model.SendLog{
		mkLog(1, model.ServiceTypeSale, model.SendStatusSent, "2024-02-01T10:00:00Z"),
		mkLog(2, model.ServiceTypeRepairFixed, model.SendStatusFailed, "2024-02-02T10:00:00Z"),
	}}
	svc := newReportService(logs)

	daily1, err := svc.Daily(context.Background(), nil, nil)
	require.NoError(t, err)
	daily2, err := svc.Daily(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, daily1, daily2)

	summary1, err := svc.Summary(context.Background(), nil, nil)
	require.NoError(t, err)
	summary2, err := svc.Summary(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, summary1, summary2)
}

func TestReportsDegradeWhenStoreUnreachable(t *testing.T) {
	logs := &fakeSendLogRepo{listErr: errors.New("connection refused")}
	svc := newReportService(logs)

	stats, err := svc.Daily(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, stats)

	summary, err := svc.Summary(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalMessages)
	assert.Empty(t, summary.ByServiceType)
}
