// internal/service/template_service.go
package service

import (
	"context"
	"strings"

	appErrors "github.com/Abubaker23alluhaibi/isbyanSystem/internal/errors"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
)

// FallbackCustomerName substitutes for {customer_name} when the customer
// record has no name ("dear customer").
const FallbackCustomerName = "الزبون العزيز"

var defaultTemplateTexts = map[model.ServiceType]string{
	model.ServiceTypeSale:              "مرحباً {customer_name}، نود معرفة رأيك في خدمة {service_type}. شكراً لكم!",
	model.ServiceTypeRepairFixed:       "مرحباً {customer_name}، نود معرفة رأيك في خدمة {service_type}. شكراً لكم!",
	model.ServiceTypeRepairUnfixed:     "مرحباً {customer_name}، نود معرفة رأيك في خدمة {service_type}. شكراً لكم!",
	model.ServiceTypeMaintenanceReport: "مرحباً {customer_name}، تم اكتمال تقرير الصيانة لخدمة {service_type}. شكراً لكم!",
}

// DefaultTemplateText returns the built-in template text for a service type.
func DefaultTemplateText(serviceType model.ServiceType) string {
	return defaultTemplateTexts[serviceType]
}

// RenderTemplate substitutes the customer name and service type label into
// the template text.
func RenderTemplate(text string, customer model.Customer, serviceType model.ServiceType) string {
	name := strings.TrimSpace(customer.Name)
	if name == "" {
		name = FallbackCustomerName
	}
	message := strings.ReplaceAll(text, "{customer_name}", name)
	message = strings.ReplaceAll(message, "{service_type}", string(serviceType))
	return message
}

// TemplateService manages the stored message templates.
type TemplateService struct {
	TemplateRepo repository.TemplateRepositoryInterface
}

// List returns all stored templates.
func (s *TemplateService) List(ctx context.Context) ([]model.MessageTemplate, error) {
	return s.TemplateRepo.List(ctx)
}

// Get returns the stored template for a service type, falling back to the
// built-in default text when none is stored yet.
func (s *TemplateService) Get(ctx context.Context, serviceType model.ServiceType) (*model.MessageTemplate, error) {
	if !serviceType.Valid() {
		return nil, appErrors.NewValidation("unrecognized service type: %s", serviceType)
	}
	t, err := s.TemplateRepo.GetByServiceType(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return &model.MessageTemplate{
			ServiceType: serviceType,
			Text:        DefaultTemplateText(serviceType),
		}, nil
	}
	return t, nil
}

// Upsert stores or replaces the template text for a service type.
func (s *TemplateService) Upsert(ctx context.Context, serviceType model.ServiceType, text string) (*model.MessageTemplate, error) {
	if !serviceType.Valid() {
		return nil, appErrors.NewValidation("unrecognized service type: %s", serviceType)
	}
	if strings.TrimSpace(text) == "" {
		return nil, appErrors.NewValidation("template text is required")
	}
	return s.TemplateRepo.Upsert(ctx, serviceType, text)
}
