package models

import "time"

// Job represents a vacancy record, created either manually or by the bulk
// importer. Title uniqueness is enforced by a pre-insert lookup in the
// service layer, not by a database constraint.
type Job struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"index;not null"`
	Status         string    `json:"status"`
	CompanyName    string    `json:"company_name"`
	CompanyAddress string    `json:"company_address"`
	LogoURL        string    `json:"logo_url"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the database table name for the Job model.
func (Job) TableName() string {
	return "jobs"
}
