package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appErrors "github.com/Abubaker23alluhaibi/isbyanSystem/internal/errors"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+964 770 123 4567", "9647701234567"},
		{"009647701234567", "9647701234567"},
		{"(964) 770-123-4567", "9647701234567"},
		{"  9647701234567  ", "9647701234567"},
		{"077012345", "077012345"},
	}
	for _, c := range cases {
		got, err := service.NormalizePhone(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestNormalizePhoneRejectsBadNumbers(t *testing.T) {
	var validation *appErrors.ValidationError
	for _, in := range []string{"", "12345", "07x0123456", "12345678901234567"} {
		_, err := service.NormalizePhone(in)
		require.ErrorAs(t, err, &validation, "input %q", in)
	}
}

func TestCreateCustomer(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := &service.CustomerService{CustomerRepo: repo, Logger: zerolog.Nop()}

	customer, err := svc.Create(context.Background(), service.CreateCustomerInput{
		Name:        "أحمد",
		Phone:       "+964 770 123 4567",
		ServiceType: model.ServiceTypeSale,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, customer.ID)
	assert.Equal(t, "9647701234567", customer.Phone)
	assert.False(t, customer.ServiceDate.IsZero())

	var validation *appErrors.ValidationError
	_, err = svc.Create(context.Background(), service.CreateCustomerInput{Phone: "", ServiceType: model.ServiceTypeSale})
	require.ErrorAs(t, err, &validation)

	_, err = svc.Create(context.Background(), service.CreateCustomerInput{Phone: "9647701234567", ServiceType: "bad"})
	require.ErrorAs(t, err, &validation)
}

func TestImportFromExcel(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	rows := [][]any{
		{"Name", "Phone", "Notes"},
		{"أحمد", "+964 770 111 1111", "زبون قديم"},
		{"", "9647702222222", ""},
		{"سارة", "123", ""}, // invalid phone
		{"علي", "", ""},     // missing phone
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf))

	repo := &fakeCustomerRepo{}
	svc := &service.CustomerService{CustomerRepo: repo, Logger: zerolog.Nop()}

	result, err := svc.ImportFromExcel(context.Background(), &buf, model.ServiceTypeRepairFixed)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "row 4")
	assert.Contains(t, result.Errors[1], "row 5")

	require.Len(t, repo.customers, 2)
	assert.Equal(t, "9647701111111", repo.customers[0].Phone)
	assert.Equal(t, "أحمد", repo.customers[0].Name)
	assert.Equal(t, model.ServiceTypeRepairFixed, repo.customers[0].ServiceType)
}

func TestImportFromExcelRejectsUnknownServiceType(t *testing.T) {
	svc := &service.CustomerService{CustomerRepo: &fakeCustomerRepo{}, Logger: zerolog.Nop()}

	var validation *appErrors.ValidationError
	_, err := svc.ImportFromExcel(context.Background(), bytes.NewReader(nil), model.ServiceType("bad"))
	require.ErrorAs(t, err, &validation)
}
