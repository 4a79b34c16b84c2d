// internal/service/program_service.go
package service

import (
	"strings"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/queue"
	"github.com/unclebandit/campaign-catalog/internal/repository"
)

type ProgramService struct {
	ProgramRepo  repository.ProgramRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	Events       queue.Publisher
}

type CreateProgramInput struct {
	Name        string
	CampaignID  int
	ProgramType string
	Platform    string
	ExternalRef *int
}

// UpdateProgramInput carries a partial update; nil means leave unchanged.
type UpdateProgramInput struct {
	Name        *string
	CampaignID  *int
	ProgramType *string
	Platform    *string
	ExternalRef *int
}

type ProgramListFilter struct {
	Q          string
	CampaignID int
	Page       int
	PageSize   int
}

func (s *ProgramService) Create(in CreateProgramInput) (*model.Program, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, appErrors.NewValidation("name", "required")
	}
	if err := s.checkCampaign(in.CampaignID); err != nil {
		return nil, err
	}

	p := &model.Program{
		Name:        name,
		CampaignID:  in.CampaignID,
		ProgramType: strings.TrimSpace(in.ProgramType),
		Platform:    strings.TrimSpace(in.Platform),
		ExternalRef: in.ExternalRef,
	}
	if err := s.ProgramRepo.Create(p); err != nil {
		return nil, err
	}

	notify(s.Events, "program", p.ID, "created")
	return p, nil
}

func (s *ProgramService) Get(id int) (*model.Program, error) {
	return s.ProgramRepo.GetByID(id)
}

func (s *ProgramService) List(f ProgramListFilter) ([]model.Program, map[string]int, error) {
	page, pageSize, offset := clampPage(f.Page, f.PageSize)

	ptrs, total, err := s.ProgramRepo.List(offset, pageSize, strings.TrimSpace(f.Q), f.CampaignID)
	if err != nil {
		return nil, nil, err
	}

	programs := make([]model.Program, len(ptrs))
	for i, p := range ptrs {
		programs[i] = *p
	}

	return programs, paginationMap(page, pageSize, total), nil
}

func (s *ProgramService) Update(id int, in UpdateProgramInput) (*model.Program, error) {
	p, err := s.ProgramRepo.GetByID(id)
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
	if in.CampaignID != nil {
		if err := s.checkCampaign(*in.CampaignID); err != nil {
			return nil, err
		}
		p.CampaignID = *in.CampaignID
	}
	if in.ProgramType != nil {
		p.ProgramType = strings.TrimSpace(*in.ProgramType)
	}
	if in.Platform != nil {
		p.Platform = strings.TrimSpace(*in.Platform)
	}
	if in.ExternalRef != nil {
		p.ExternalRef = in.ExternalRef
	}

	if err := s.ProgramRepo.Update(p); err != nil {
		return nil, err
	}

	notify(s.Events, "program", p.ID, "updated")
	return p, nil
}

// Delete removes the program and, by cascade, its placements.
func (s *ProgramService) Delete(id int) error {
	if err := s.ProgramRepo.Delete(id); err != nil {
		return err
	}
	notify(s.Events, "program", id, "deleted")
	return nil
}

func (s *ProgramService) checkCampaign(campaignID int) error {
	if campaignID <= 0 {
		return appErrors.NewValidation("campaign_id", "required")
	}
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		if appErrors.IsNotFound(err) {
			return appErrors.NewValidation("campaign_id", "referenced campaign does not exist")
		}
		return err
	}
	return nil
}
