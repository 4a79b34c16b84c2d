// internal/service/placement_service.go
package service

import (
	"strings"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/queue"
	"github.com/unclebandit/campaign-catalog/internal/repository"
)

type PlacementService struct {
	PlacementRepo repository.PlacementRepositoryInterface
	ProgramRepo   repository.ProgramRepositoryInterface
	Events        queue.Publisher
}

type CreatePlacementInput struct {
	Name       string
	ProgramID  int
	Channel    model.Channel
	VeevaCode  string
	AdServerID string
}

// UpdatePlacementInput carries a partial update; nil means leave unchanged.
type UpdatePlacementInput struct {
	Name       *string
	ProgramID  *int
	Channel    *model.Channel
	VeevaCode  *string
	AdServerID *string
}

type PlacementListFilter struct {
	Q         string
	ProgramID int
	Channel   string
	Page      int
	PageSize  int
}

func (s *PlacementService) Create(in CreatePlacementInput) (*model.Placement, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, appErrors.NewValidation("name", "required")
	}
	if err := s.checkProgram(in.ProgramID); err != nil {
		return nil, err
	}
	if !in.Channel.Valid() {
		return nil, appErrors.NewValidation("channel", "must be one of email, app, dx, cmd")
	}

	p := &model.Placement{
		Name:       name,
		ProgramID:  in.ProgramID,
		Channel:    in.Channel,
		VeevaCode:  strings.TrimSpace(in.VeevaCode),
		AdServerID: strings.TrimSpace(in.AdServerID),
	}
	if err := s.PlacementRepo.Create(p); err != nil {
		return nil, err
	}

	notify(s.Events, "placement", p.ID, "created")
	return p, nil
}

func (s *PlacementService) Get(id int) (*model.Placement, error) {
	return s.PlacementRepo.GetByID(id)
}

func (s *PlacementService) List(f PlacementListFilter) ([]model.Placement, map[string]int, error) {
	page, pageSize, offset := clampPage(f.Page, f.PageSize)

	ptrs, total, err := s.PlacementRepo.List(offset, pageSize, strings.TrimSpace(f.Q), f.ProgramID, f.Channel)
	if err != nil {
		return nil, nil, err
	}

	placements := make([]model.Placement, len(ptrs))
	for i, p := range ptrs {
		placements[i] = *p
	}

	return placements, paginationMap(page, pageSize, total), nil
}

func (s *PlacementService) Update(id int, in UpdatePlacementInput) (*model.Placement, error) {
	p, err := s.PlacementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, appErrors.NewValidation("name", "required")
		}
		p.Name = name
	}
	if in.ProgramID != nil {
		if err := s.checkProgram(*in.ProgramID); err != nil {
			return nil, err
		}
		p.ProgramID = *in.ProgramID
	}
	if in.Channel != nil {
		if !in.Channel.Valid() {
			return nil, appErrors.NewValidation("channel", "must be one of email, app, dx, cmd")
		}
		p.Channel = *in.Channel
	}
	if in.VeevaCode != nil {
		p.VeevaCode = strings.TrimSpace(*in.VeevaCode)
	}
	if in.AdServerID != nil {
		p.AdServerID = strings.TrimSpace(*in.AdServerID)
	}

	if err := s.PlacementRepo.Update(p); err != nil {
		return nil, err
	}

	notify(s.Events, "placement", p.ID, "updated")
	return p, nil
}

func (s *PlacementService) Delete(id int) error {
	if err := s.PlacementRepo.Delete(id); err != nil {
		return err
	}
	notify(s.Events, "placement", id, "deleted")
	return nil
}

func (s *PlacementService) checkProgram(programID int) error {
	if programID <= 0 {
		return appErrors.NewValidation("program_id", "required")
	}
	if _, err := s.ProgramRepo.GetByID(programID); err != nil {
		if appErrors.IsNotFound(err) {
			return appErrors.NewValidation("program_id", "referenced program does not exist")
		}
		return err
	}
	return nil
}
