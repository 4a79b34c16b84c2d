// internal/model/brand.go
package model

import "time"

type Brand struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Pharma          string    `db:"pharma" json:"pharma,omitempty"`
	TherapeuticArea string    `db:"therapeutic_area" json:"therapeutic_area,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
