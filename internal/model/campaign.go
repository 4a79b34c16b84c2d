// internal/model/campaign.go
package model

import "time"

type Campaign struct {
	ID           int        `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	BrandID      int        `db:"brand_id" json:"brand_id"`
	BusinessUnit string     `db:"business_unit" json:"business_unit,omitempty"`
	Status       Status     `db:"status" json:"status"`
	StartDate    *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate      *time.Time `db:"end_date" json:"end_date,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
