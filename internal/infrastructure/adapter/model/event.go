package model

import (
	"time"

	"gorm.io/datatypes"
)

// TeamDocument is the stored shape of one side of an event
type TeamDocument struct {
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city,omitempty"`
	Conference   string `json:"conference,omitempty"`
}

// Event represents the database model for a sporting event
type Event struct {
	ID          string                           `gorm:"primaryKey;size:128"`
	HomeTeam    datatypes.JSONType[TeamDocument] `gorm:"column:home_team"`
	VisitorTeam datatypes.JSONType[TeamDocument] `gorm:"column:visitor_team"`
	StartsAt    *time.Time
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}
