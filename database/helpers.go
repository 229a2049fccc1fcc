package database

import (
	"gorm.io/gorm"
)

// createIfAbsent inserts value unless a row matching the query already
// exists. Existing rows are left untouched, so every seed step can be
// replayed safely. Returns true when a row was inserted.
func createIfAbsent(db *gorm.DB, model interface{}, value interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := db.Create(value).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Helper functions for creating pointers
func strPtr(s string) *string {
	return &s
}

func uintPtr(u uint) *uint {
	return &u
}
