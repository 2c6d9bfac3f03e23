package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Fact is a talking point shown on the investor deck page
type Fact struct {
	ID        string    `gorm:"type:char(26);primaryKey"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// DeckProfile is the singleton row holding the deck's progress gauge
type DeckProfile struct {
	ID            int       `gorm:"primaryKey;check:id = 1"`
	ProgressValue int       `gorm:"not null;default:0"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (f *Fact) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = ulid.Make().String()
	}
	return nil
}
