// internal/controller/template_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

type TemplateController struct {
	TemplateService *service.TemplateService
}

func (c *TemplateController) List(w http.ResponseWriter, r *http.Request) {
	templates, err := c.TemplateService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, templates)
}

func (c *TemplateController) Get(w http.ResponseWriter, r *http.Request) {
	serviceType := model.ServiceType(chi.URLParam(r, "serviceType"))

	template, err := c.TemplateService.Get(r.Context(), serviceType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, template)
}

func (c *TemplateController) Upsert(w http.ResponseWriter, r *http.Request) {
	serviceType := model.ServiceType(chi.URLParam(r, "serviceType"))

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	template, err := c.TemplateService.Upsert(r.Context(), serviceType, body.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, template)
}
