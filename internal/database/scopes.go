package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/task-manager/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsFold restricts a query to rows whose column contains value,
// ignoring case. An empty value leaves the query untouched.
func ContainsFold(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
		return db.Where(fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", column), pattern)
	}
}
