// internal/web/program_pages.go
package web

import (
	"fmt"
	"net/http"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

type programListView struct {
	page
	Q        string
	Programs []model.Program
}

type programFormView struct {
	page
	Form      model.Program
	Campaigns []model.Campaign
}

type programDetailView struct {
	page
	Form       model.Program
	Campaigns  []model.Campaign
	Placements []model.Placement
}

func (s *Server) listPrograms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	programs, _, err := s.Programs.List(service.ProgramListFilter{
		Q:          q,
		CampaignID: queryIntParam(r, "campaign_id"),
		PageSize:   listPageSize,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, http.StatusOK, "program_list", programListView{
		page:     page{Title: "Programs"},
		Q:        q,
		Programs: programs,
	})
}

func (s *Server) newProgram(w http.ResponseWriter, r *http.Request) {
	campaigns, _, err := s.Campaigns.List(service.CampaignListFilter{PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, http.StatusOK, "program_new", programFormView{
		page:      page{Title: "New program"},
		Form:      model.Program{CampaignID: queryIntParam(r, "campaign_id")},
		Campaigns: campaigns,
	})
}

func (s *Server) createProgram(w http.ResponseWriter, r *http.Request) {
	in := service.CreateProgramInput{
		Name:        r.FormValue("name"),
		CampaignID:  formInt(r, "campaign_id"),
		ProgramType: r.FormValue("program_type"),
		Platform:    r.FormValue("platform"),
		ExternalRef: formIntPtr(r, "external_ref"),
	}

	p, err := s.Programs.Create(in)
	if err != nil {
		if appErrors.IsValidation(err) {
			campaigns, _, lerr := s.Campaigns.List(service.CampaignListFilter{PageSize: listPageSize})
			if lerr != nil {
				s.fail(w, lerr)
				return
			}
			s.render(w, http.StatusBadRequest, "program_new", programFormView{
				page: page{Title: "New program", Error: err.Error()},
				Form: model.Program{
					Name:        in.Name,
					CampaignID:  in.CampaignID,
					ProgramType: in.ProgramType,
					Platform:    in.Platform,
					ExternalRef: in.ExternalRef,
				},
				Campaigns: campaigns,
			})
			return
		}
		s.fail(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/programs/%d", p.ID), http.StatusSeeOther)
}

func (s *Server) programDetail(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.renderProgramDetail(w, http.StatusOK, id, "")
}

func (s *Server) renderProgramDetail(w http.ResponseWriter, status, id int, errMsg string) {
	p, err := s.Programs.Get(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	campaigns, _, err := s.Campaigns.List(service.CampaignListFilter{PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	placements, _, err := s.Placements.List(service.PlacementListFilter{ProgramID: id, PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, status, "program_detail", programDetailView{
		page:       page{Title: p.Name, Error: errMsg},
		Form:       *p,
		Campaigns:  campaigns,
		Placements: placements,
	})
}

func (s *Server) editProgram(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	campaignID := formInt(r, "campaign_id")
	_, err = s.Programs.Update(id, service.UpdateProgramInput{
		Name:        strPtr(r.FormValue("name")),
		CampaignID:  &campaignID,
		ProgramType: strPtr(r.FormValue("program_type")),
		Platform:    strPtr(r.FormValue("platform")),
		ExternalRef: formIntPtr(r, "external_ref"),
	})
	if err != nil {
		if appErrors.IsValidation(err) {
			s.renderProgramDetail(w, http.StatusBadRequest, id, err.Error())
			return
		}
		s.fail(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/programs/%d", id), http.StatusSeeOther)
}

func (s *Server) deleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := s.Programs.Delete(id); err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, "/programs", http.StatusSeeOther)
}
