// package models defines the data model for the info system
package models

import (
	"time"
)

// Model is a row the engine persists locally. Catalog objects are never stored.
type Model interface {
	ID() string
	CreatedAt() time.Time
	Validate() error
}

// Repository is the append-and-query store for one [Model] type. Records are immutable once
// written, so there is no update.
type Repository[T Model] interface {
	Create(model T) error
	Get(id string) (T, error)
	Delete(id string) error
	List(criteria map[string]any) ([]T, error) // criteria keys are column names; see each implementation
}

// FillTarget is implemented by every domain object the info system can enrich in place.
type FillTarget interface {
	TargetName() string
}
