package shared

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus represents the lifecycle status of a record.
// Records are never physically removed; deletion is a status transition.
type RecordStatus string

const (
	StatusCreated  RecordStatus = "created"
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
	StatusDeleted  RecordStatus = "deleted"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetStatus() RecordStatus
}

// BaseEntity provides the common audit fields shared by all entities
type BaseEntity struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time    `gorm:"not null"`
	CreatedBy string       `gorm:"type:varchar(50);not null"`
	UpdatedAt time.Time    `gorm:"not null"`
	UpdatedBy string       `gorm:"type:varchar(50)"`
	Status    RecordStatus `gorm:"type:varchar(20);not null;default:'created'"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetStatus returns the lifecycle status
func (e *BaseEntity) GetStatus() RecordStatus {
	return e.Status
}

// IsDeleted reports whether the record has been soft-deleted
func (e *BaseEntity) IsDeleted() bool {
	return e.Status == StatusDeleted
}

// StampCreate fills creation audit fields. The ID is generated when absent.
func (e *BaseEntity) StampCreate(by string, at time.Time) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = at
	e.CreatedBy = by
	e.UpdatedAt = at
	e.UpdatedBy = by
	if e.Status == "" {
		e.Status = StatusCreated
	}
}

// StampUpdate fills update audit fields
func (e *BaseEntity) StampUpdate(by string, at time.Time) {
	e.UpdatedAt = at
	e.UpdatedBy = by
}

// MarkDeleted soft-deletes the record and stamps the update audit fields
func (e *BaseEntity) MarkDeleted(by string, at time.Time) {
	e.Status = StatusDeleted
	e.StampUpdate(by, at)
}

// Activate transitions the record to active.
// Deleted records must go through Reactivate instead.
func (e *BaseEntity) Activate() error {
	if e.Status == StatusDeleted {
		return NewDomainError("INVALID_STATE", "Deleted records require explicit reactivation")
	}
	e.Status = StatusActive
	return nil
}

// Deactivate transitions the record to inactive
func (e *BaseEntity) Deactivate() error {
	if e.Status == StatusDeleted {
		return NewDomainError("INVALID_STATE", "Cannot deactivate a deleted record")
	}
	e.Status = StatusInactive
	return nil
}

// Reactivate restores an inactive or deleted record to active
func (e *BaseEntity) Reactivate() {
	e.Status = StatusActive
}

// Audited is implemented by entities that carry the shared audit fields
type Audited interface {
	StampCreate(by string, at time.Time)
	StampUpdate(by string, at time.Time)
	MarkDeleted(by string, at time.Time)
	GetID() uuid.UUID
}

// NewBaseEntity creates a base entity stamped with the given actor
func NewBaseEntity(by string) BaseEntity {
	var e BaseEntity
	e.StampCreate(by, time.Now())
	return e
}
