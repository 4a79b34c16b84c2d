// internal/web/campaign_pages.go
package web

import (
	"fmt"
	"net/http"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

type campaignListView struct {
	page
	Q         string
	Status    string
	Statuses  []model.Status
	Campaigns []model.Campaign
}

type campaignFormView struct {
	page
	Form     model.Campaign
	Brands   []model.Brand
	Statuses []model.Status
}

type campaignDetailView struct {
	page
	Form     model.Campaign
	Brands   []model.Brand
	Statuses []model.Status
	Programs []model.Program
}

func (s *Server) listCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	campaigns, _, err := s.Campaigns.List(service.CampaignListFilter{
		Q:        q,
		Status:   status,
		BrandID:  queryIntParam(r, "brand_id"),
		PageSize: listPageSize,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, http.StatusOK, "campaign_list", campaignListView{
		page:      page{Title: "Campaigns"},
		Q:         q,
		Status:    status,
		Statuses:  model.Statuses,
		Campaigns: campaigns,
	})
}

func (s *Server) newCampaign(w http.ResponseWriter, r *http.Request) {
	brands, _, err := s.Brands.List(service.BrandListFilter{PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, http.StatusOK, "campaign_new", campaignFormView{
		page:     page{Title: "New campaign"},
		Form:     model.Campaign{BrandID: queryIntParam(r, "brand_id"), Status: model.StatusPlanned},
		Brands:   brands,
		Statuses: model.Statuses,
	})
}

func (s *Server) createCampaign(w http.ResponseWriter, r *http.Request) {
	in := service.CreateCampaignInput{
		Name:         r.FormValue("name"),
		BrandID:      formInt(r, "brand_id"),
		BusinessUnit: r.FormValue("business_unit"),
		Status:       model.Status(r.FormValue("status")),
		StartDate:    formDate(r, "start_date"),
		EndDate:      formDate(r, "end_date"),
	}

	c, err := s.Campaigns.Create(in)
	if err != nil {
		if appErrors.IsValidation(err) {
			brands, _, lerr := s.Brands.List(service.BrandListFilter{PageSize: listPageSize})
			if lerr != nil {
				s.fail(w, lerr)
				return
			}
			s.render(w, http.StatusBadRequest, "campaign_new", campaignFormView{
				page: page{Title: "New campaign", Error: err.Error()},
				Form: model.Campaign{
					Name:         in.Name,
					BrandID:      in.BrandID,
					BusinessUnit: in.BusinessUnit,
					Status:       in.Status,
					StartDate:    in.StartDate,
					EndDate:      in.EndDate,
				},
				Brands:   brands,
				Statuses: model.Statuses,
			})
			return
		}
		s.fail(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/campaigns/%d", c.ID), http.StatusSeeOther)
}

func (s *Server) campaignDetail(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.renderCampaignDetail(w, http.StatusOK, id, "")
}

func (s *Server) renderCampaignDetail(w http.ResponseWriter, status, id int, errMsg string) {
	c, err := s.Campaigns.Get(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	brands, _, err := s.Brands.List(service.BrandListFilter{PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	programs, _, err := s.Programs.List(service.ProgramListFilter{CampaignID: id, PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, status, "campaign_detail", campaignDetailView{
		page:     page{Title: c.Name, Error: errMsg},
		Form:     *c,
		Brands:   brands,
		Statuses: model.Statuses,
		Programs: programs,
	})
}

func (s *Server) editCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	status := model.Status(r.FormValue("status"))
	brandID := formInt(r, "brand_id")
	_, err = s.Campaigns.Update(id, service.UpdateCampaignInput{
		Name:         strPtr(r.FormValue("name")),
		BrandID:      &brandID,
		BusinessUnit: strPtr(r.FormValue("business_unit")),
		Status:       &status,
		StartDate:    formDate(r, "start_date"),
		EndDate:      formDate(r, "end_date"),
		SetStartDate: true,
		SetEndDate:   true,
	})
	if err != nil {
		if appErrors.IsValidation(err) {
			s.renderCampaignDetail(w, http.StatusBadRequest, id, err.Error())
			return
		}
		s.fail(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/campaigns/%d", id), http.StatusSeeOther)
}

func (s *Server) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := s.Campaigns.Delete(id); err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, "/campaigns", http.StatusSeeOther)
}
