// internal/service/campaign_service.go
package service

import (
	"strings"
	"time"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/queue"
	"github.com/unclebandit/campaign-catalog/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	BrandRepo    repository.BrandRepositoryInterface
	Events       queue.Publisher
}

type CreateCampaignInput struct {
	Name         string
	BrandID      int
	BusinessUnit string
	Status       model.Status
	StartDate    *time.Time
	EndDate      *time.Time
}

// UpdateCampaignInput carries a partial update; nil means leave
// unchanged. Dates use the Set flags so a provided-but-empty value can
// clear them.
type UpdateCampaignInput struct {
	Name         *string
	BrandID      *int
	BusinessUnit *string
	Status       *model.Status
	StartDate    *time.Time
	EndDate      *time.Time
	SetStartDate bool
	SetEndDate   bool
}

type CampaignListFilter struct {
	Q        string
	BrandID  int
	Status   string
	Page     int
	PageSize int
}

func (s *CampaignService) Create(in CreateCampaignInput) (*model.Campaign, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, appErrors.NewValidation("name", "required")
	}
	if err := s.checkBrand(in.BrandID); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusPlanned
	}
	if !status.Valid() {
		return nil, appErrors.NewValidation("status", "must be one of planned, active, paused, completed, canceled")
	}

	c := &model.Campaign{
		Name:         name,
		BrandID:      in.BrandID,
		BusinessUnit: strings.TrimSpace(in.BusinessUnit),
		Status:       status,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
	}
	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}

	notify(s.Events, "campaign", c.ID, "created")
	return c, nil
}

func (s *CampaignService) Get(id int) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

func (s *CampaignService) List(f CampaignListFilter) ([]model.Campaign, map[string]int, error) {
	page, pageSize, offset := clampPage(f.Page, f.PageSize)

	ptrs, total, err := s.CampaignRepo.List(offset, pageSize, strings.TrimSpace(f.Q), f.BrandID, f.Status)
	if err != nil {
		return nil, nil, err
	}

	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}

	return campaigns, paginationMap(page, pageSize, total), nil
}

func (s *CampaignService) Update(id int, in UpdateCampaignInput) (*model.Campaign, error) {
	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, appErrors.NewValidation("name", "required")
		}
		c.Name = name
	}
	if in.BrandID != nil {
		if err := s.checkBrand(*in.BrandID); err != nil {
			return nil, err
		}
		c.BrandID = *in.BrandID
	}
	if in.BusinessUnit != nil {
		c.BusinessUnit = strings.TrimSpace(*in.BusinessUnit)
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, appErrors.NewValidation("status", "must be one of planned, active, paused, completed, canceled")
		}
		c.Status = *in.Status
	}
	if in.SetStartDate {
		c.StartDate = in.StartDate
	}
	if in.SetEndDate {
		c.EndDate = in.EndDate
	}

	if err := s.CampaignRepo.Update(c); err != nil {
		return nil, err
	}

	notify(s.Events, "campaign", c.ID, "updated")
	return c, nil
}

// Delete removes the campaign and, by cascade, its programs and
// placements.
func (s *CampaignService) Delete(id int) error {
	if err := s.CampaignRepo.Delete(id); err != nil {
		return err
	}
	notify(s.Events, "campaign", id, "deleted")
	return nil
}

func (s *CampaignService) checkBrand(brandID int) error {
	if brandID <= 0 {
		return appErrors.NewValidation("brand_id", "required")
	}
	if _, err := s.BrandRepo.GetByID(brandID); err != nil {
		if appErrors.IsNotFound(err) {
			return appErrors.NewValidation("brand_id", "referenced brand does not exist")
		}
		return err
	}
	return nil
}
