// internal/service/customer_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	appErrors "github.com/Abubaker23alluhaibi/isbyanSystem/internal/errors"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
)

var phonePattern = regexp.MustCompile(`^[0-9]{9,15}$`)

// NormalizePhone strips whitespace, dashes, parentheses and the leading
// "+" or "00" international prefix, then requires 9-15 digits.
func NormalizePhone(raw string) (string, error) {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(raw))
	if strings.HasPrefix(clean, "+") {
		clean = clean[1:]
	} else if strings.HasPrefix(clean, "00") {
		clean = clean[2:]
	}
	if !phonePattern.MatchString(clean) {
		return "", appErrors.NewValidation("invalid phone number %q: must be 9-15 digits", raw)
	}
	return clean, nil
}

// CreateCustomerInput is the request shape for creating one customer.
type CreateCustomerInput struct {
	Name        string
	Phone       string
	Notes       string
	ServiceType model.ServiceType
	ServiceDate *time.Time
}

// ImportResult reports a spreadsheet import: how many rows landed and the
// per-row errors for the rest.
type ImportResult struct {
	Imported  int              `json:"imported"`
	Errors    []string         `json:"errors,omitempty"`
	Customers []model.Customer `json:"customers"`
}

// CustomerService manages customer records.
type CustomerService struct {
	CustomerRepo  repository.CustomerRepositoryInterface
	MaxImportRows int
	Logger        zerolog.Logger
}

// List returns customers, optionally filtered by service type.
func (s *CustomerService) List(ctx context.Context, serviceType model.ServiceType) ([]model.Customer, error) {
	if serviceType != "" && !serviceType.Valid() {
		return nil, appErrors.NewValidation("unrecognized service type: %s", serviceType)
	}
	return s.CustomerRepo.List(ctx, serviceType)
}

// Create validates and persists a single customer.
func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*model.Customer, error) {
	if strings.TrimSpace(in.Phone) == "" {
		return nil, appErrors.NewValidation("phone number is required")
	}
	if !in.ServiceType.Valid() {
		return nil, appErrors.NewValidation("unrecognized service type: %s", in.ServiceType)
	}
	phone, err := NormalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	serviceDate := time.Now()
	if in.ServiceDate != nil {
		serviceDate = *in.ServiceDate
	}

	customer := &model.Customer{
		Name:        in.Name,
		Phone:       phone,
		Notes:       in.Notes,
		ServiceType: in.ServiceType,
		ServiceDate: serviceDate,
	}
	if err := s.CustomerRepo.Create(ctx, customer); err != nil {
		return nil, appErrors.NewStoreUnavailable(err)
	}
	return customer, nil
}

// Delete removes one customer.
func (s *CustomerService) Delete(ctx context.Context, id int) error {
	found, err := s.CustomerRepo.Delete(ctx, id)
	if err != nil {
		return appErrors.NewStoreUnavailable(err)
	}
	if !found {
		return appErrors.NewValidation("customer %d not found", id)
	}
	return nil
}

// DeleteMany removes all customers in the ID list and reports the count.
func (s *CustomerService) DeleteMany(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, appErrors.NewValidation("id list is required")
	}
	n, err := s.CustomerRepo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, appErrors.NewStoreUnavailable(err)
	}
	return n, nil
}

// ImportFromExcel reads the first sheet of an xlsx workbook and creates one
// customer per data row under the given service type. The header row maps
// columns by name in English or Arabic (Phone/رقم الهاتف, Name/الاسم,
// Notes/ملاحظات). Bad rows are collected as errors, never aborting the rest.
func (s *CustomerService) ImportFromExcel(ctx context.Context, r io.Reader, serviceType model.ServiceType) (*ImportResult, error) {
	if !serviceType.Valid() {
		return nil, appErrors.NewValidation("unrecognized service type: %s", serviceType)
	}

	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, appErrors.NewValidation("could not read workbook: %v", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, appErrors.NewValidation("workbook has no sheets")
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, appErrors.NewValidation("could not read sheet %q: %v", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, appErrors.NewValidation("sheet %q has no data rows", sheets[0])
	}

	phoneCol, nameCol, notesCol := headerColumns(rows[0])
	if phoneCol < 0 {
		return nil, appErrors.NewValidation("sheet %q has no phone column", sheets[0])
	}

	maxRows := s.MaxImportRows
	if maxRows <= 0 {
		maxRows = 5000
	}
	if len(rows)-1 > maxRows {
		return nil, appErrors.NewValidation("sheet has %d rows, limit is %d", len(rows)-1, maxRows)
	}

	result := &ImportResult{Customers: []model.Customer{}}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		phone := cell(row, phoneCol)
		if phone == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing phone number", rowNum))
			continue
		}
		clean, err := NormalizePhone(phone)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		customer := &model.Customer{
			Name:        cell(row, nameCol),
			Phone:       clean,
			Notes:       cell(row, notesCol),
			ServiceType: serviceType,
			ServiceDate: time.Now(),
		}
		if err := s.CustomerRepo.Create(ctx, customer); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Customers = append(result.Customers, *customer)
		result.Imported++
	}
	return result, nil
}

func headerColumns(header []string) (phone, name, notes int) {
	phone, name, notes = -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "phone", "رقم الهاتف":
			phone = i
		case "name", "الاسم":
			name = i
		case "notes", "ملاحظات":
			notes = i
		}
	}
	return phone, name, notes
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
