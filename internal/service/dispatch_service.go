// internal/service/dispatch_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/delivery"
	appErrors "github.com/Abubaker23alluhaibi/isbyanSystem/internal/errors"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/metrics"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
)

// DispatchService fans a send attempt out across a set of customers for one
// service type and appends one send log per resolved customer.
type DispatchService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	TemplateRepo repository.TemplateRepositoryInterface
	SendLogRepo  repository.SendLogRepositoryInterface
	Channel      delivery.Channel
	Logger       zerolog.Logger
}

// DispatchResult reports one dispatch invocation.
type DispatchResult struct {
	Total  int             `json:"total"`
	Sent   int             `json:"sent"`
	Failed int             `json:"failed"`
	Logs   []model.SendLog `json:"logs"`
}

// Dispatch resolves the customers, renders the template per customer,
// attempts delivery, and records one send log per resolved customer in
// resolution order. One customer's delivery failure never aborts the rest;
// a send-log write failure does, because the event could not be recorded.
func (s *DispatchService) Dispatch(ctx context.Context, customerIDs []int, serviceType model.ServiceType) (*DispatchResult, error) {
	if len(customerIDs) == 0 {
		return nil, appErrors.NewValidation("customer id list is required")
	}
	if serviceType == "" {
		return nil, appErrors.NewValidation("service type is required")
	}
	if !serviceType.Valid() {
		return nil, appErrors.NewValidation("unrecognized service type: %s", serviceType)
	}

	template, err := s.TemplateRepo.GetByServiceType(ctx, serviceType)
	if err != nil {
		return nil, appErrors.NewStoreUnavailable(err)
	}
	if template == nil {
		return nil, appErrors.NewTemplateNotFound(string(serviceType))
	}

	customers, err := s.CustomerRepo.GetByIDs(ctx, customerIDs)
	if err != nil {
		return nil, appErrors.NewStoreUnavailable(err)
	}
	if len(customers) == 0 {
		return nil, appErrors.NewNoCustomersFound()
	}

	metrics.ObserveDispatch()

	result := &DispatchResult{
		Total: len(customers),
		Logs:  make([]model.SendLog, 0, len(customers)),
	}

	for _, customer := range customers {
		message := RenderTemplate(template.Text, customer, serviceType)

		status := model.SendStatusSent
		if err := s.Channel.Send(ctx, customer.Phone, message); err != nil {
			status = model.SendStatusFailed
			s.Logger.Warn().
				Err(err).
				Int("customer_id", customer.ID).
				Str("service_type", string(serviceType)).
				Msg("delivery failed, recording failed send log")
		}

		log := model.SendLog{
			ID:          uuid.NewString(),
			CustomerID:  customer.ID,
			ServiceType: serviceType,
			MessageText: message,
			Status:      status,
			SentAt:      time.Now(),
		}
		if err := s.SendLogRepo.Create(ctx, &log); err != nil {
			s.Logger.Error().Err(err).Msg("send log write failed, aborting dispatch")
			return nil, appErrors.NewStoreUnavailable(err)
		}

		metrics.ObserveSend(status, string(serviceType))
		if status == model.SendStatusSent {
			result.Sent++
		} else {
			result.Failed++
		}
		result.Logs = append(result.Logs, log)
	}

	return result, nil
}
