package models

import (
	"fmt"
	"time"
)

type TaskPriority string

const (
	PriorityUrgent TaskPriority = "urgent"
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Label is the human readable form, e.g. "Urgent".
func (p TaskPriority) Label() string {
	switch p {
	case PriorityUrgent:
		return "Urgent"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return string(p)
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"type:varchar(100);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Deadline    *time.Time   `json:"deadline"`
	IsCompleted bool         `gorm:"not null;default:false" json:"is_completed"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	TaskTypeID  uint64       `gorm:"not null;index" json:"task_type_id"`
	ProjectID   *uint64      `gorm:"index" json:"project_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	TaskType  TaskType `gorm:"foreignKey:TaskTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"task_type,omitempty"`
	Project   *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"project,omitempty"`
	Assignees []Worker `gorm:"many2many:task_assignees;" json:"assignees,omitempty"`
	Tags      []Tag    `gorm:"many2many:task_tags;" json:"tags,omitempty"`
}

// DisplayName renders "name: Priority".
func (t Task) DisplayName() string {
	return fmt.Sprintf("%s: %s", t.Name, t.Priority.Label())
}
