// internal/controller/brand_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-catalog/internal/service"
)

type BrandController struct {
	BrandService *service.BrandService
}

func (c *BrandController) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name            string `json:"name"`
		Pharma          string `json:"pharma"`
		TherapeuticArea string `json:"therapeutic_area"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid body"})
		return
	}

	brand, err := c.BrandService.Create(service.CreateBrandInput{
		Name:            body.Name,
		Pharma:          body.Pharma,
		TherapeuticArea: body.TherapeuticArea,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, brand)
}

func (c *BrandController) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, pagination, err := c.BrandService.List(service.BrandListFilter{
		Q:        r.URL.Query().Get("q"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       brands,
		"pagination": pagination,
	})
}

func (c *BrandController) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid brand id"})
		return
	}

	brand, err := c.BrandService.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, brand)
}

func (c *BrandController) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid brand id"})
		return
	}

	var body struct {
		Name            *string `json:"name"`
		Pharma          *string `json:"pharma"`
		TherapeuticArea *string `json:"therapeutic_area"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid body"})
		return
	}

	brand, err := c.BrandService.Update(id, service.UpdateBrandInput{
		Name:            body.Name,
		Pharma:          body.Pharma,
		TherapeuticArea: body.TherapeuticArea,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, brand)
}

func (c *BrandController) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid brand id"})
		return
	}

	if err := c.BrandService.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": true, "id": id})
}
