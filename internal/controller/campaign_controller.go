// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name         string  `json:"name"`
		BrandID      int     `json:"brand_id"`
		BusinessUnit string  `json:"business_unit"`
		Status       string  `json:"status"`
		StartDate    *string `json:"start_date"`
		EndDate      *string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid body"})
		return
	}

	start, err := parseDate("start_date", body.StartDate)
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate("end_date", body.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	campaign, err := c.CampaignService.Create(service.CreateCampaignInput{
		Name:         body.Name,
		BrandID:      body.BrandID,
		BusinessUnit: body.BusinessUnit,
		Status:       model.Status(body.Status),
		StartDate:    start,
		EndDate:      end,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, pagination, err := c.CampaignService.List(service.CampaignListFilter{
		Q:        r.URL.Query().Get("q"),
		BrandID:  queryInt(r, "brand_id"),
		Status:   r.URL.Query().Get("status"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       campaigns,
		"pagination": pagination,
	})
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid campaign id"})
		return
	}

	campaign, err := c.CampaignService.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (c *CampaignController) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid campaign id"})
		return
	}

	var body struct {
		Name         *string `json:"name"`
		BrandID      *int    `json:"brand_id"`
		BusinessUnit *string `json:"business_unit"`
		Status       *string `json:"status"`
		StartDate    *string `json:"start_date"`
		EndDate      *string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid body"})
		return
	}

	in := service.UpdateCampaignInput{
		Name:         body.Name,
		BrandID:      body.BrandID,
		BusinessUnit: body.BusinessUnit,
	}
	if body.Status != nil {
		st := model.Status(*body.Status)
		in.Status = &st
	}
	if body.StartDate != nil {
		in.SetStartDate = true
		if in.StartDate, err = parseDate("start_date", body.StartDate); err != nil {
			writeError(w, err)
			return
		}
	}
	if body.EndDate != nil {
		in.SetEndDate = true
		if in.EndDate, err = parseDate("end_date", body.EndDate); err != nil {
			writeError(w, err)
			return
		}
	}

	campaign, err := c.CampaignService.Update(id, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (c *CampaignController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid campaign id"})
		return
	}

	if err := c.CampaignService.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": true, "id": id})
}
