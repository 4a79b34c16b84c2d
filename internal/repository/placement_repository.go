package repository

import (
	"database/sql"
	"fmt"
	"time"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
)

type PlacementRepositoryInterface interface {
	Create(p *model.Placement) error
	GetByID(id int) (*model.Placement, error)
	List(offset, limit int, q string, programID int, channel string) ([]*model.Placement, int, error)
	Update(p *model.Placement) error
	Delete(id int) error
}

type PlacementRepository struct {
	DB *sql.DB
}

func (r *PlacementRepository) Create(p *model.Placement) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	query := `
		INSERT INTO placements (name, program_id, channel, veeva_code, ad_server_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRow(query, p.Name, p.ProgramID, p.Channel, p.VeevaCode, p.AdServerID, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
}

func (r *PlacementRepository) GetByID(id int) (*model.Placement, error) {
	query := `
		SELECT id, name, program_id, channel, veeva_code, ad_server_id, created_at, updated_at
		FROM placements WHERE id=$1
	`
	var p model.Placement
	err := r.DB.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.ProgramID, &p.Channel, &p.VeevaCode, &p.AdServerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewPlacementNotFound(id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlacementRepository) List(offset, limit int, q string, programID int, channel string) ([]*model.Placement, int, error) {
	placements := []*model.Placement{}
	where := ""
	args := []interface{}{}
	argPos := 1

	if q != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+q+"%")
		argPos++
	}
	if programID > 0 {
		where += fmt.Sprintf(" AND program_id=$%d", argPos)
		args = append(args, programID)
		argPos++
	}
	if channel != "" {
		where += fmt.Sprintf(" AND channel=$%d", argPos)
		args = append(args, channel)
		argPos++
	}

	query := `SELECT id, name, program_id, channel, veeva_code, ad_server_id, created_at, updated_at FROM placements WHERE 1=1` + where
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	queryArgs := append(append([]interface{}{}, args...), limit, offset)

	rows, err := r.DB.Query(query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		p := &model.Placement{}
		if err := rows.Scan(&p.ID, &p.Name, &p.ProgramID, &p.Channel, &p.VeevaCode, &p.AdServerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		placements = append(placements, p)
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM placements WHERE 1=1`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return placements, total, nil
}

func (r *PlacementRepository) Update(p *model.Placement) error {
	p.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE placements
		SET name=$1, program_id=$2, channel=$3, veeva_code=$4, ad_server_id=$5, updated_at=$6
		WHERE id=$7
	`
	res, err := r.DB.Exec(query, p.Name, p.ProgramID, p.Channel, p.VeevaCode, p.AdServerID, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewPlacementNotFound(p.ID)
	}
	return nil
}

func (r *PlacementRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM placements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewPlacementNotFound(id)
	}
	return nil
}

var _ PlacementRepositoryInterface = (*PlacementRepository)(nil)
