// internal/controller/placement_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

type PlacementController struct {
	PlacementService *service.PlacementService
}

func (c *PlacementController) CreatePlacement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name       string `json:"name"`
		ProgramID  int    `json:"program_id"`
		Channel    string `json:"channel"`
		VeevaCode  string `json:"veeva_code"`
		AdServerID string `json:"ad_server_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid body"})
		return
	}

	placement, err := c.PlacementService.Create(service.CreatePlacementInput{
		Name:       body.Name,
		ProgramID:  body.ProgramID,
		Channel:    model.Channel(body.Channel),
		VeevaCode:  body.VeevaCode,
		AdServerID: body.AdServerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, placement)
}

func (c *PlacementController) ListPlacements(w http.ResponseWriter, r *http.Request) {
	placements, pagination, err := c.PlacementService.List(service.PlacementListFilter{
		Q:         r.URL.Query().Get("q"),
		ProgramID: queryInt(r, "program_id"),
		Channel:   r.URL.Query().Get("channel"),
		Page:      queryInt(r, "page"),
		PageSize:  queryInt(r, "page_size"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       placements,
		"pagination": pagination,
	})
}

func (c *PlacementController) GetPlacement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid placement id"})
		return
	}

	placement, err := c.PlacementService.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, placement)
}

func (c *PlacementController) UpdatePlacement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid placement id"})
		return
	}

	var body struct {
		Name       *string `json:"name"`
		ProgramID  *int    `json:"program_id"`
		Channel    *string `json:"channel"`
		VeevaCode  *string `json:"veeva_code"`
		AdServerID *string `json:"ad_server_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid body"})
		return
	}

	in := service.UpdatePlacementInput{
		Name:       body.Name,
		ProgramID:  body.ProgramID,
		VeevaCode:  body.VeevaCode,
		AdServerID: body.AdServerID,
	}
	if body.Channel != nil {
		ch := model.Channel(*body.Channel)
		in.Channel = &ch
	}

	placement, err := c.PlacementService.Update(id, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, placement)
}

func (c *PlacementController) DeletePlacement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid placement id"})
		return
	}

	if err := c.PlacementService.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": true, "id": id})
}
