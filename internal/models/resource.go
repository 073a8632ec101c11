package models

import (
	"time"

	"gorm.io/gorm"
)

// ColorResource is a named, fixed color that widgets reference by ID from
// their attributes (e.g. textColor=@color/brand).
type ColorResource struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"name"` // normalized, lowercase
	Hex  string `gorm:"not null" json:"hex"`              // #RRGGBB or #AARRGGBB
	Note string `json:"note"`
}
