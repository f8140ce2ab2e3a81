package meal

import "time"

// Meal is always created and queried under its owner's id; the owner comes
// from the authenticated identity, never from client input.
type Meal struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;index;not null" json:"userId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	Date        time.Time `gorm:"type:timestamptz;not null" json:"date"`
	IsDiet      bool      `gorm:"not null;default:false" json:"isDiet"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}
