// internal/web/placement_pages.go
package web

import (
	"fmt"
	"net/http"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

type placementListView struct {
	page
	Q              string
	Channel        string
	ChannelOptions []model.Channel
	Placements     []model.Placement
}

type placementFormView struct {
	page
	Form           model.Placement
	Programs       []model.Program
	ChannelOptions []model.Channel
}

type placementDetailView struct {
	page
	Form           model.Placement
	Programs       []model.Program
	ChannelOptions []model.Channel
}

func (s *Server) listPlacements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	channel := r.URL.Query().Get("channel")
	placements, _, err := s.Placements.List(service.PlacementListFilter{
		Q:         q,
		Channel:   channel,
		ProgramID: queryIntParam(r, "program_id"),
		PageSize:  listPageSize,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, http.StatusOK, "placement_list", placementListView{
		page:           page{Title: "Placements"},
		Q:              q,
		Channel:        channel,
		ChannelOptions: model.Channels,
		Placements:     placements,
	})
}

func (s *Server) newPlacement(w http.ResponseWriter, r *http.Request) {
	programs, _, err := s.Programs.List(service.ProgramListFilter{PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, http.StatusOK, "placement_new", placementFormView{
		page:           page{Title: "New placement"},
		Form:           model.Placement{ProgramID: queryIntParam(r, "program_id"), Channel: model.ChannelEmail},
		Programs:       programs,
		ChannelOptions: model.Channels,
	})
}

func (s *Server) createPlacement(w http.ResponseWriter, r *http.Request) {
	in := service.CreatePlacementInput{
		Name:       r.FormValue("name"),
		ProgramID:  formInt(r, "program_id"),
		Channel:    model.Channel(r.FormValue("channel")),
		VeevaCode:  r.FormValue("veeva_code"),
		AdServerID: r.FormValue("ad_server_id"),
	}

	p, err := s.Placements.Create(in)
	if err != nil {
		if appErrors.IsValidation(err) {
			programs, _, lerr := s.Programs.List(service.ProgramListFilter{PageSize: listPageSize})
			if lerr != nil {
				s.fail(w, lerr)
				return
			}
			s.render(w, http.StatusBadRequest, "placement_new", placementFormView{
				page: page{Title: "New placement", Error: err.Error()},
				Form: model.Placement{
					Name:       in.Name,
					ProgramID:  in.ProgramID,
					Channel:    in.Channel,
					VeevaCode:  in.VeevaCode,
					AdServerID: in.AdServerID,
				},
				Programs:       programs,
				ChannelOptions: model.Channels,
			})
			return
		}
		s.fail(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/placements/%d", p.ID), http.StatusSeeOther)
}

func (s *Server) placementDetail(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.renderPlacementDetail(w, http.StatusOK, id, "")
}

func (s *Server) renderPlacementDetail(w http.ResponseWriter, status, id int, errMsg string) {
	p, err := s.Placements.Get(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	programs, _, err := s.Programs.List(service.ProgramListFilter{PageSize: listPageSize})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, status, "placement_detail", placementDetailView{
		page:           page{Title: p.Name, Error: errMsg},
		Form:           *p,
		Programs:       programs,
		ChannelOptions: model.Channels,
	})
}

func (s *Server) editPlacement(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	programID := formInt(r, "program_id")
	channel := model.Channel(r.FormValue("channel"))
	_, err = s.Placements.Update(id, service.UpdatePlacementInput{
		Name:       strPtr(r.FormValue("name")),
		ProgramID:  &programID,
		Channel:    &channel,
		VeevaCode:  strPtr(r.FormValue("veeva_code")),
		AdServerID: strPtr(r.FormValue("ad_server_id")),
	})
	if err != nil {
		if appErrors.IsValidation(err) {
			s.renderPlacementDetail(w, http.StatusBadRequest, id, err.Error())
			return
		}
		s.fail(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/placements/%d", id), http.StatusSeeOther)
}

func (s *Server) deletePlacement(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := s.Placements.Delete(id); err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, "/placements", http.StatusSeeOther)
}
