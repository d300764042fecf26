package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/Abubaker23alluhaibi/isbyanSystem/internal/errors"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

func TestRenderTemplate(t *testing.T) {
	customer := model.Customer{Name: "أحمد", Phone: "9647701111111"}

	rendered := service.RenderTemplate(
		"مرحباً {customer_name}، نود معرفة رأيك في خدمة {service_type}.",
		customer,
		model.ServiceTypeSale,
	)
	assert.Equal(t, "مرحباً أحمد، نود معرفة رأيك في خدمة مبيع.", rendered)
}

func TestRenderTemplateFallsBackWhenNameEmpty(t *testing.T) {
	for _, name := range []string{"", "   "} {
		rendered := service.RenderTemplate("مرحباً {customer_name}", model.Customer{Name: name}, model.ServiceTypeSale)
		assert.Equal(t, "مرحباً "+service.FallbackCustomerName, rendered)
	}
}

func TestRenderTemplateReplacesEveryOccurrence(t *testing.T) {
	rendered := service.RenderTemplate(
		"{customer_name} {customer_name} - {service_type} {service_type}",
		model.Customer{Name: "سارة"},
		model.ServiceTypeRepairFixed,
	)
	assert.Equal(t, "سارة سارة - صيانة يصلح صيانة يصلح", rendered)
}

func TestTemplateGetFallsBackToDefault(t *testing.T) {
	svc := &service.TemplateService{TemplateRepo: &fakeTemplateRepo{}}

	template, err := svc.Get(context.Background(), model.ServiceTypeMaintenanceReport)
	require.NoError(t, err)
	assert.Equal(t, model.ServiceTypeMaintenanceReport, template.ServiceType)
	assert.Equal(t, service.DefaultTemplateText(model.ServiceTypeMaintenanceReport), template.Text)
	assert.Zero(t, template.ID, "fallback template is not a stored row")
}

func TestTemplateGetRejectsUnknownServiceType(t *testing.T) {
	svc := &service.TemplateService{TemplateRepo: &fakeTemplateRepo{}}

	_, err := svc.Get(context.Background(), model.ServiceType("غير معروف"))

	var validation *appErrors.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestTemplateUpsert(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := &service.TemplateService{TemplateRepo: repo}

	template, err := svc.Upsert(context.Background(), model.ServiceTypeSale, "نص جديد {customer_name}")
	require.NoError(t, err)
	assert.Equal(t, "نص جديد {customer_name}", template.Text)
	assert.Equal(t, "نص جديد {customer_name}", repo.templates[model.ServiceTypeSale])

	var validation *appErrors.ValidationError
	_, err = svc.Upsert(context.Background(), model.ServiceTypeSale, "   ")
	require.ErrorAs(t, err, &validation)

	_, err = svc.Upsert(context.Background(), model.ServiceType("bad"), "نص")
	require.ErrorAs(t, err, &validation)
}
