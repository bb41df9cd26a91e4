package models

// Join rows for the many-to-many relations. The tables themselves are created
// from the many2many tags; these types are used for explicit writes.

type TaskAssignee struct {
	TaskID   uint64 `gorm:"primarykey" json:"task_id"`
	WorkerID uint64 `gorm:"primarykey" json:"worker_id"`
}

func (TaskAssignee) TableName() string { return "task_assignees" }

type TaskTag struct {
	TaskID uint64 `gorm:"primarykey" json:"task_id"`
	TagID  uint64 `gorm:"primarykey" json:"tag_id"`
}

func (TaskTag) TableName() string { return "task_tags" }

type TeamMember struct {
	TeamID   uint64 `gorm:"primarykey" json:"team_id"`
	WorkerID uint64 `gorm:"primarykey" json:"worker_id"`
}

func (TeamMember) TableName() string { return "team_members" }
