package repository

import (
	"database/sql"
	"fmt"
	"time"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
)

type BrandRepositoryInterface interface {
	Create(b *model.Brand) error
	GetByID(id int) (*model.Brand, error)
	List(offset, limit int, q string) ([]*model.Brand, int, error)
	Update(b *model.Brand) error
	Delete(id int) error
	ExistsByName(name string, excludeID int) (bool, error)
}

type BrandRepository struct {
	DB *sql.DB
}

func (r *BrandRepository) Create(b *model.Brand) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	query := `
		INSERT INTO brands (name, pharma, therapeutic_area, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRow(query, b.Name, b.Pharma, b.TherapeuticArea, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
}

func (r *BrandRepository) GetByID(id int) (*model.Brand, error) {
	query := `
		SELECT id, name, pharma, therapeutic_area, created_at, updated_at
		FROM brands WHERE id=$1
	`
	var b model.Brand
	err := r.DB.QueryRow(query, id).Scan(&b.ID, &b.Name, &b.Pharma, &b.TherapeuticArea, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewBrandNotFound(id)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepository) List(offset, limit int, q string) ([]*model.Brand, int, error) {
	brands := []*model.Brand{}
	query := `SELECT id, name, pharma, therapeutic_area, created_at, updated_at FROM brands WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if q != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+q+"%")
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		b := &model.Brand{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Pharma, &b.TherapeuticArea, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		brands = append(brands, b)
	}

	countQuery := `SELECT COUNT(*) FROM brands WHERE 1=1`
	argsCount := []interface{}{}
	if q != "" {
		countQuery += " AND name ILIKE $1"
		argsCount = append(argsCount, "%"+q+"%")
	}

	var total int
	if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return brands, total, nil
}

func (r *BrandRepository) Update(b *model.Brand) error {
	b.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE brands
		SET name=$1, pharma=$2, therapeutic_area=$3, updated_at=$4
		WHERE id=$5
	`
	res, err := r.DB.Exec(query, b.Name, b.Pharma, b.TherapeuticArea, b.UpdatedAt, b.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewBrandNotFound(b.ID)
	}
	return nil
}

// Delete removes the brand; campaigns, programs and placements under it
// go with it via ON DELETE CASCADE.
func (r *BrandRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM brands WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewBrandNotFound(id)
	}
	return nil
}

func (r *BrandRepository) ExistsByName(name string, excludeID int) (bool, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM brands WHERE LOWER(name)=LOWER($1) AND id<>$2`,
		name, excludeID,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ BrandRepositoryInterface = (*BrandRepository)(nil)
