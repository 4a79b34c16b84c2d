// internal/controller/program_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-catalog/internal/service"
)

type ProgramController struct {
	ProgramService *service.ProgramService
}

func (c *ProgramController) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		CampaignID  int    `json:"campaign_id"`
		ProgramType string `json:"program_type"`
		Platform    string `json:"platform"`
		ExternalRef *int   `json:"external_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid body"})
		return
	}

	program, err := c.ProgramService.Create(service.CreateProgramInput{
		Name:        body.Name,
		CampaignID:  body.CampaignID,
		ProgramType: body.ProgramType,
		Platform:    body.Platform,
		ExternalRef: body.ExternalRef,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, program)
}

func (c *ProgramController) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, pagination, err := c.ProgramService.List(service.ProgramListFilter{
		Q:          r.URL.Query().Get("q"),
		CampaignID: queryInt(r, "campaign_id"),
		Page:       queryInt(r, "page"),
		PageSize:   queryInt(r, "page_size"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       programs,
		"pagination": pagination,
	})
}

func (c *ProgramController) GetProgram(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid program id"})
		return
	}

	program, err := c.ProgramService.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, program)
}

func (c *ProgramController) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid program id"})
		return
	}

	var body struct {
		Name        *string `json:"name"`
		CampaignID  *int    `json:"campaign_id"`
		ProgramType *string `json:"program_type"`
		Platform    *string `json:"platform"`
		ExternalRef *int    `json:"external_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid body"})
		return
	}

	program, err := c.ProgramService.Update(id, service.UpdateProgramInput{
		Name:        body.Name,
		CampaignID:  body.CampaignID,
		ProgramType: body.ProgramType,
		Platform:    body.Platform,
		ExternalRef: body.ExternalRef,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, program)
}

func (c *ProgramController) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid program id"})
		return
	}

	if err := c.ProgramService.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": true, "id": id})
}
