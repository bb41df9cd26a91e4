package models

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&Position{},
		&Worker{},
		&TaskType{},
		&Tag{},
		&Team{},
		&Project{},
		&Task{},
	}
}
