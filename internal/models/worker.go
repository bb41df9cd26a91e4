package models

import (
	"fmt"
	"time"
)

type Worker struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	FirstName    string     `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string     `gorm:"type:varchar(150)" json:"last_name"`
	Email        string     `gorm:"type:varchar(254)" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	PositionID   uint64     `gorm:"not null;index" json:"position_id"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Position Position `gorm:"foreignKey:PositionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"position,omitempty"`
	Tasks    []Task   `gorm:"many2many:task_assignees;" json:"-"`
	Teams    []Team   `gorm:"many2many:team_members;" json:"-"`
}

// DisplayName renders "username: first last" the way listings show a worker.
func (w Worker) DisplayName() string {
	return fmt.Sprintf("%s: %s %s", w.Username, w.FirstName, w.LastName)
}
