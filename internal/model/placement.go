// internal/model/placement.go
package model

import "time"

type Placement struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	ProgramID  int       `db:"program_id" json:"program_id"`
	Channel    Channel   `db:"channel" json:"channel"`
	VeevaCode  string    `db:"veeva_code" json:"veeva_code,omitempty"`
	AdServerID string    `db:"ad_server_id" json:"ad_server_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
