// internal/controller/sendlog_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

type SendLogController struct {
	SendLogService *service.SendLogService
}

// List returns a filtered, paginated page of raw send logs with the
// customer name and phone joined in.
func (c *SendLogController) List(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	filter := repository.SendLogFilter{
		ServiceType: model.ServiceType(r.URL.Query().Get("serviceType")),
		Status:      r.URL.Query().Get("status"),
		Start:       start,
		End:         end,
		Page:        queryInt(r, "page", 1),
		Limit:       queryInt(r, "limit", 50),
	}

	page, err := c.SendLogService.List(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// Aggregated returns (date, service type, status) counts over the window.
func (c *SendLogController) Aggregated(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	rows, err := c.SendLogService.Aggregated(r.Context(), start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
