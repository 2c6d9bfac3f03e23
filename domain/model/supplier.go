package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Supplier represents an egg farm on the desk's books
type Supplier struct {
	ID            string         `gorm:"type:char(26);primaryKey"`
	Name          string         `gorm:"type:varchar(100);not null"`
	Welfare       string         `gorm:"type:varchar(50)"`  // e.g. "free-range", "organic"
	Certs         string         `gorm:"type:varchar(100)"` // comma-separated, e.g. "Lion,Organic"
	Sizes         string         `gorm:"type:varchar(50)"`  // comma-separated, e.g. "L,XL"
	PackFormats   string         `gorm:"type:varchar(50)"`  // comma-separated, e.g. "tray,box"
	MOQTrays      *int           `gorm:"column:moq_trays"`
	DeliveryDays  string         `gorm:"type:varchar(50)"`  // comma-separated, e.g. "Tue,Fri"
	DeliveryAreas string         `gorm:"type:varchar(100)"` // comma-separated prefixes, e.g. "BN,BN1,RH"
	Email         string         `gorm:"type:varchar(100)"`
	Phone         string         `gorm:"type:varchar(30)"`
	WhatsApp      string         `gorm:"type:varchar(30)"`
	StoryPDFURL   string         `gorm:"type:varchar(255)"`
	PriceBandLow  *float64
	PriceBandHigh *float64
	Notes         string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = ulid.Make().String()
	}
	return nil
}
