package repository

import (
	"database/sql"
	"fmt"
	"time"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id int) (*model.Campaign, error)
	List(offset, limit int, q string, brandID int, status string) ([]*model.Campaign, int, error)
	Update(c *model.Campaign) error
	Delete(id int) error
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.StatusPlanned
	}
	query := `
		INSERT INTO campaigns (name, brand_id, business_unit, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRow(query, c.Name, c.BrandID, c.BusinessUnit, c.Status, c.StartDate, c.EndDate, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
	query := `
		SELECT id, name, brand_id, business_unit, status, start_date, end_date, created_at, updated_at
		FROM campaigns WHERE id=$1
	`
	var c model.Campaign
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.BrandID, &c.BusinessUnit, &c.Status, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) List(offset, limit int, q string, brandID int, status string) ([]*model.Campaign, int, error) {
	campaigns := []*model.Campaign{}
	where := ""
	args := []interface{}{}
	argPos := 1

	if q != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+q+"%")
		argPos++
	}
	if brandID > 0 {
		where += fmt.Sprintf(" AND brand_id=$%d", argPos)
		args = append(args, brandID)
		argPos++
	}
	if status != "" {
		where += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, status)
		argPos++
	}

	query := `SELECT id, name, brand_id, business_unit, status, start_date, end_date, created_at, updated_at FROM campaigns WHERE 1=1` + where
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	queryArgs := append(append([]interface{}{}, args...), limit, offset)

	rows, err := r.DB.Query(query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		c := &model.Campaign{}
		if err := rows.Scan(&c.ID, &c.Name, &c.BrandID, &c.BusinessUnit, &c.Status, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM campaigns WHERE 1=1`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	c.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE campaigns
		SET name=$1, brand_id=$2, business_unit=$3, status=$4, start_date=$5, end_date=$6, updated_at=$7
		WHERE id=$8
	`
	res, err := r.DB.Exec(query, c.Name, c.BrandID, c.BusinessUnit, c.Status, c.StartDate, c.EndDate, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	return nil
}

func (r *CampaignRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
