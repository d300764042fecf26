// internal/controller/message_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/delivery"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

type MessageController struct {
	DispatchService *service.DispatchService
}

// Send dispatches the stored template for one service type to a set of
// customers and returns the per-dispatch counts plus the created logs.
func (c *MessageController) Send(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerIDs []int  `json:"customerIds"`
		ServiceType string `json:"serviceType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	result, err := c.DispatchService.Dispatch(r.Context(), body.CustomerIDs, model.ServiceType(body.ServiceType))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"total":   result.Total,
		"sent":    result.Sent,
		"failed":  result.Failed,
		"logs":    result.Logs,
	})
}

// GenerateLink builds a wa.me click-to-chat link for a phone and message.
func (c *MessageController) GenerateLink(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if strings.TrimSpace(body.Phone) == "" || strings.TrimSpace(body.Message) == "" {
		respondError(w, http.StatusBadRequest, "phone and message are required")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"link": delivery.WhatsAppLink(body.Phone, body.Message),
	})
}
