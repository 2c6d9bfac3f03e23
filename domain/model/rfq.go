package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// RFQ represents a buyer request captured by the desk
type RFQ struct {
	ID              string     `gorm:"type:char(26);primaryKey"`
	ClientName      string     `gorm:"type:varchar(100)"`
	Areas           string     `gorm:"type:varchar(255)"` // comma-separated area codes, e.g. "BN1,BN"
	Welfare         string     `gorm:"type:varchar(50)"`
	DeliveryWindows string     `gorm:"type:varchar(100)"` // e.g. "Tue/Fri"
	PaymentTerms    string     `gorm:"type:varchar(50)"`
	Notes           string     `gorm:"type:text"`
	ShareToken      string     `gorm:"type:varchar(64);index"`
	Items           []LineItem `gorm:"foreignKey:RFQID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

// LineItem represents one requested product line on an RFQ. Its ID is the
// stable key quotes reference; Position only orders items for display.
type LineItem struct {
	ID          string `gorm:"type:char(26);primaryKey"`
	RFQID       string `gorm:"type:char(26);not null;index"`
	Position    int    `gorm:"not null"`
	Kind        string `gorm:"type:varchar(20)"` // retail or wholesale, lowercased
	Size        string `gorm:"type:varchar(10)"` // e.g. "L", "XL", "Mixed" stored uppercased
	Pack        string `gorm:"type:varchar(10)"` // tray or box, lowercased
	QtyWeek     int    `gorm:"not null;default:0"`
	TargetPrice string `gorm:"type:varchar(20)"` // free text, e.g. "£2.40"
}

func (r *RFQ) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	return nil
}

func (i *LineItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = ulid.Make().String()
	}
	return nil
}
