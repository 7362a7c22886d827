package models

import (
	"encoding/json"
	"time"
)

// Project is a portfolio entry. Technologies is stored as a JSON-encoded
// string column and exposed to clients as a string array.
type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Img          string    `json:"img"`
	Technologies string    `gorm:"type:text" json:"-"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Role         string    `json:"role"`
	DemoURL      string    `json:"demo_url"`
	ProjectURL   string    `json:"project_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TechnologyList decodes the stored JSON. A missing or malformed value
// decodes to an empty list rather than an error.
func (p *Project) TechnologyList() []string {
	if p.Technologies == "" {
		return []string{}
	}
	var techs []string
	if err := json.Unmarshal([]byte(p.Technologies), &techs); err != nil {
		return []string{}
	}
	return techs
}

// SetTechnologyList encodes techs into the stored column.
func (p *Project) SetTechnologyList(techs []string) error {
	if techs == nil {
		techs = []string{}
	}
	raw, err := json.Marshal(techs)
	if err != nil {
		return err
	}
	p.Technologies = string(raw)
	return nil
}
