// internal/model/program.go
package model

import "time"

type Program struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	CampaignID  int       `db:"campaign_id" json:"campaign_id"`
	ProgramType string    `db:"program_type" json:"program_type,omitempty"`
	Platform    string    `db:"platform" json:"platform,omitempty"`
	ExternalRef *int      `db:"external_ref" json:"external_ref,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
