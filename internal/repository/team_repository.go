package repository

import (
	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a team and its memberships atomically
func (r *GormTeamRepository) Create(team *models.Team, memberIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(team).Error; err != nil {
			return mapWriteError(err)
		}
		return replaceMembers(tx, team.ID, memberIDs)
	})
}

func (r *GormTeamRepository) FindByID(id uint64, preload ...string) (*models.Team, error) {
	return findByID[models.Team](r.db, id, preload...)
}

func (r *GormTeamRepository) List(filter ListFilter) ([]models.Team, int64, error) {
	return listPage[models.Team](r.db, filter, "teams.name", "teams.name ASC, teams.id ASC", "Members")
}

// Update replaces the team row and its member set
func (r *GormTeamRepository) Update(team *models.Team, memberIDs []uint64) error {
	return updateLocked(r.db, team.ID, team, func(tx *gorm.DB) error {
		return replaceMembers(tx, team.ID, memberIDs)
	})
}

func (r *GormTeamRepository) Delete(id uint64) error {
	return deleteWith[models.Team](r.db, id,
		func(tx *gorm.DB) error {
			return tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Model(&models.Project{}).Where("team_id = ?", id).Update("team_id", nil).Error
		},
	)
}

func replaceMembers(tx *gorm.DB, teamID uint64, workerIDs []uint64) error {
	if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error; err != nil {
		return err
	}
	if len(workerIDs) == 0 {
		return nil
	}

	members := make([]models.TeamMember, len(workerIDs))
	for i, workerID := range workerIDs {
		members[i] = models.TeamMember{TeamID: teamID, WorkerID: workerID}
	}
	return mapWriteError(tx.Create(&members).Error)
}
