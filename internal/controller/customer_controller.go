// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

func (c *CustomerController) List(w http.ResponseWriter, r *http.Request) {
	serviceType := model.ServiceType(r.URL.Query().Get("serviceType"))

	customers, err := c.CustomerService.List(r.Context(), serviceType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (c *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Notes       string `json:"notes"`
		ServiceType string `json:"serviceType"`
		ServiceDate string `json:"serviceDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	in := service.CreateCustomerInput{
		Name:        body.Name,
		Phone:       body.Phone,
		Notes:       body.Notes,
		ServiceType: model.ServiceType(body.ServiceType),
	}
	if body.ServiceDate != "" {
		t, err := parseDateParam(body.ServiceDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid serviceDate: use YYYY-MM-DD or RFC 3339")
			return
		}
		in.ServiceDate = &t
	}

	customer, err := c.CustomerService.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

// Import accepts a multipart upload ("file") of an xlsx workbook plus a
// serviceType form value, and creates one customer per valid row.
func (c *CustomerController) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	serviceType := model.ServiceType(r.FormValue("serviceType"))
	if serviceType == "" {
		respondError(w, http.StatusBadRequest, "serviceType is required")
		return
	}

	result, err := c.CustomerService.ImportFromExcel(r.Context(), file, serviceType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"imported":  result.Imported,
		"errors":    result.Errors,
		"customers": result.Customers,
	})
}

func (c *CustomerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	if err := c.CustomerService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "customer deleted"})
}

func (c *CustomerController) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	n, err := c.CustomerService.DeleteMany(r.Context(), body.IDs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"deleted": n})
}

// parseDateParam accepts a plain date or a full RFC 3339 timestamp.
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
