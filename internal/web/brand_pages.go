// internal/web/brand_pages.go
package web

import (
	"fmt"
	"net/http"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

type brandListView struct {
	page
	Q      string
	Brands []model.Brand
}

type brandFormView struct {
	page
	Form model.Brand
}

type brandDetailView struct {
	page
	Brand     model.Brand
	Campaigns []model.Campaign
}

func (s *Server) listBrands(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	brands, _, err := s.Brands.List(service.BrandListFilter{Q: q, PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, http.StatusOK, "brand_list", brandListView{
		page:   page{Title: "Brands"},
		Q:      q,
		Brands: brands,
	})
}

func (s *Server) newBrand(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "brand_new", brandFormView{page: page{Title: "New brand"}})
}

func (s *Server) createBrand(w http.ResponseWriter, r *http.Request) {
	in := service.CreateBrandInput{
		Name:            r.FormValue("name"),
		Pharma:          r.FormValue("pharma"),
		TherapeuticArea: r.FormValue("therapeutic_area"),
	}

	b, err := s.Brands.Create(in)
	if err != nil {
		if appErrors.IsValidation(err) {
			s.render(w, http.StatusBadRequest, "brand_new", brandFormView{
				page: page{Title: "New brand", Error: err.Error()},
				Form: model.Brand{Name: in.Name, Pharma: in.Pharma, TherapeuticArea: in.TherapeuticArea},
			})
			return
		}
		s.fail(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/brands/%d", b.ID), http.StatusSeeOther)
}

func (s *Server) brandDetail(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.renderBrandDetail(w, http.StatusOK, id, "")
}

func (s *Server) renderBrandDetail(w http.ResponseWriter, status, id int, errMsg string) {
	b, err := s.Brands.Get(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	campaigns, _, err := s.Campaigns.List(service.CampaignListFilter{BrandID: id, PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, status, "brand_detail", brandDetailView{
		page:      page{Title: b.Name, Error: errMsg},
		Brand:     *b,
		Campaigns: campaigns,
	})
}

func (s *Server) editBrand(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	_, err = s.Brands.Update(id, service.UpdateBrandInput{
		Name:            strPtr(r.FormValue("name")),
		Pharma:          strPtr(r.FormValue("pharma")),
		TherapeuticArea: strPtr(r.FormValue("therapeutic_area")),
	})
	if err != nil {
		if appErrors.IsValidation(err) {
			s.renderBrandDetail(w, http.StatusBadRequest, id, err.Error())
			return
		}
		s.fail(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/brands/%d", id), http.StatusSeeOther)
}

func (s *Server) deleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := s.Brands.Delete(id); err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, "/brands", http.StatusSeeOther)
}
