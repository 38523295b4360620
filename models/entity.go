package models

import "time"

// Entity carries the fields every persisted record shares: a storage-assigned
// identifier, creation/update timestamps and the soft-delete flag. It is meant
// to be embedded, not used on its own.
type Entity struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"-"`
}

// Touch stamps the last-updated timestamp. Every mutating operation on an
// entity must call it.
func (e *Entity) Touch() {
	now := time.Now()
	e.UpdatedAt = &now
}

// MarkAsDeleted flips the soft-delete flag. Rows are never physically removed;
// reads filter on IsDeleted instead.
func (e *Entity) MarkAsDeleted() {
	e.IsDeleted = true
	e.Touch()
}
