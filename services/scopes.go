package services

import "gorm.io/gorm"

// notDeleted is the query filter every read goes through: soft-deleted rows
// must be invisible to callers on all paths (GetByID, GetAll, Search).
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
