// internal/service/brand_service.go
package service

import (
	"strings"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/queue"
	"github.com/unclebandit/campaign-catalog/internal/repository"
)

type BrandService struct {
	BrandRepo repository.BrandRepositoryInterface
	Events    queue.Publisher
}

type CreateBrandInput struct {
	Name            string
	Pharma          string
	TherapeuticArea string
}

// UpdateBrandInput carries a partial update; nil means leave unchanged.
type UpdateBrandInput struct {
	Name            *string
	Pharma          *string
	TherapeuticArea *string
}

type BrandListFilter struct {
	Q        string
	Page     int
	PageSize int
}

func (s *BrandService) Create(in CreateBrandInput) (*model.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, appErrors.NewValidation("name", "required")
	}

	taken, err := s.BrandRepo.ExistsByName(name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, appErrors.NewValidation("name", "a brand with this name already exists")
	}

	b := &model.Brand{
		Name:            name,
		Pharma:          strings.TrimSpace(in.Pharma),
		TherapeuticArea: strings.TrimSpace(in.TherapeuticArea),
	}
	if err := s.BrandRepo.Create(b); err != nil {
		return nil, err
	}

	notify(s.Events, "brand", b.ID, "created")
	return b, nil
}

func (s *BrandService) Get(id int) (*model.Brand, error) {
	return s.BrandRepo.GetByID(id)
}

func (s *BrandService) List(f BrandListFilter) ([]model.Brand, map[string]int, error) {
	page, pageSize, offset := clampPage(f.Page, f.PageSize)

	ptrs, total, err := s.BrandRepo.List(offset, pageSize, strings.TrimSpace(f.Q))
	if err != nil {
		return nil, nil, err
	}

	brands := make([]model.Brand, len(ptrs))
	for i, b := range ptrs {
		brands[i] = *b
	}

	return brands, paginationMap(page, pageSize, total), nil
}

func (s *BrandService) Update(id int, in UpdateBrandInput) (*model.Brand, error) {
	b, err := s.BrandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, appErrors.NewValidation("name", "required")
		}
		taken, err := s.BrandRepo.ExistsByName(name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, appErrors.NewValidation("name", "a brand with this name already exists")
		}
		b.Name = name
	}
	if in.Pharma != nil {
		b.Pharma = strings.TrimSpace(*in.Pharma)
	}
	if in.TherapeuticArea != nil {
		b.TherapeuticArea = strings.TrimSpace(*in.TherapeuticArea)
	}

	if err := s.BrandRepo.Update(b); err != nil {
		return nil, err
	}

	notify(s.Events, "brand", b.ID, "updated")
	return b, nil
}

// Delete removes the brand and, by cascade, every campaign, program and
// placement underneath it.
func (s *BrandService) Delete(id int) error {
	if err := s.BrandRepo.Delete(id); err != nil {
		return err
	}
	notify(s.Events, "brand", id, "deleted")
	return nil
}
