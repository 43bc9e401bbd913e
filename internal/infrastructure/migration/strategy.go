package migration

import "gorm.io/gorm"

// Strategy abstracts how schema changes reach the database.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}
