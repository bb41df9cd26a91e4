package models

import "time"

type Team struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Members  []Worker  `gorm:"many2many:team_members;" json:"members,omitempty"`
	Projects []Project `gorm:"foreignKey:TeamID" json:"-"`
}
