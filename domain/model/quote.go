package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Quote represents a supplier's manually captured offer against one RFQ line
// item: a unit price in £ per tray or box plus a delivery cost in £ per drop.
// LineItemKey references the item's stable ID rather than its position.
type Quote struct {
	ID           string   `gorm:"type:char(26);primaryKey"`
	RFQID        string   `gorm:"type:char(26);not null;index"`
	SupplierID   string   `gorm:"type:char(26);not null;index"`
	Supplier     Supplier `gorm:"foreignKey:SupplierID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	LineItemKey  string   `gorm:"type:char(26);not null"`
	UnitPrice    float64  `gorm:"not null"`
	DeliveryCost float64  `gorm:"not null;default:0"`
	LeadTimeDays *int
	HoldWeeks    *int
	Remarks      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = ulid.Make().String()
	}
	return nil
}
