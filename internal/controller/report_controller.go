// internal/controller/report_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

type ReportController struct {
	ReportService *service.ReportService
}

// Daily returns the per-day-per-service-type breakdown, optionally bounded
// by ?startDate= and ?endDate= (YYYY-MM-DD or RFC 3339, inclusive).
func (c *ReportController) Daily(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	stats, err := c.ReportService.Daily(r.Context(), start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Summary returns the global rollup over the same optional window.
func (c *ReportController) Summary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	summary, err := c.ReportService.Summary(r.Context(), start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// parseWindow reads the optional startDate/endDate query params. On a bad
// value it writes the 400 itself and reports !ok.
func parseWindow(w http.ResponseWriter, r *http.Request) (start, end *time.Time, ok bool) {
	if v := r.URL.Query().Get("startDate"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid startDate: use YYYY-MM-DD or RFC 3339")
			return nil, nil, false
		}
		start = &t
	}
	if v := r.URL.Query().Get("endDate"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid endDate: use YYYY-MM-DD or RFC 3339")
			return nil, nil, false
		}
		end = &t
	}
	if start != nil && end != nil && start.After(*end) {
		respondError(w, http.StatusBadRequest, "startDate must not be after endDate")
		return nil, nil, false
	}
	return start, end, true
}
