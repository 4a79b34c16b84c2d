package repository

import (
	"database/sql"
	"fmt"
	"time"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
)

type ProgramRepositoryInterface interface {
	Create(p *model.Program) error
	GetByID(id int) (*model.Program, error)
	List(offset, limit int, q string, campaignID int) ([]*model.Program, int, error)
	Update(p *model.Program) error
	Delete(id int) error
}

type ProgramRepository struct {
	DB *sql.DB
}

func (r *ProgramRepository) Create(p *model.Program) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	query := `
		INSERT INTO programs (name, campaign_id, program_type, platform, external_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRow(query, p.Name, p.CampaignID, p.ProgramType, p.Platform, p.ExternalRef, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
}

func (r *ProgramRepository) GetByID(id int) (*model.Program, error) {
	query := `
		SELECT id, name, campaign_id, program_type, platform, external_ref, created_at, updated_at
		FROM programs WHERE id=$1
	`
	var p model.Program
	err := r.DB.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.CampaignID, &p.ProgramType, &p.Platform, &p.ExternalRef, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewProgramNotFound(id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProgramRepository) List(offset, limit int, q string, campaignID int) ([]*model.Program, int, error) {
	programs := []*model.Program{}
	where := ""
	args := []interface{}{}
	argPos := 1

	if q != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+q+"%")
		argPos++
	}
	if campaignID > 0 {
		where += fmt.Sprintf(" AND campaign_id=$%d", argPos)
		args = append(args, campaignID)
		argPos++
	}

	query := `SELECT id, name, campaign_id, program_type, platform, external_ref, created_at, updated_at FROM programs WHERE 1=1` + where
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	queryArgs := append(append([]interface{}{}, args...), limit, offset)

	rows, err := r.DB.Query(query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		p := &model.Program{}
		if err := rows.Scan(&p.ID, &p.Name, &p.CampaignID, &p.ProgramType, &p.Platform, &p.ExternalRef, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		programs = append(programs, p)
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM programs WHERE 1=1`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return programs, total, nil
}

func (r *ProgramRepository) Update(p *model.Program) error {
	p.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE programs
		SET name=$1, campaign_id=$2, program_type=$3, platform=$4, external_ref=$5, updated_at=$6
		WHERE id=$7
	`
	res, err := r.DB.Exec(query, p.Name, p.CampaignID, p.ProgramType, p.Platform, p.ExternalRef, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewProgramNotFound(p.ID)
	}
	return nil
}

func (r *ProgramRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM programs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewProgramNotFound(id)
	}
	return nil
}

var _ ProgramRepositoryInterface = (*ProgramRepository)(nil)
