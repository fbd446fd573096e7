package domain

import (
	"errors"
	"time"
)

// SKU item errors
var (
	ErrSKUItemNotFound = errors.New("sku item not found")
	ErrInvalidSKUItem  = errors.New("invalid sku item")
)

// SKUItem is a physical instance of a SKU, identified by its RFID
type SKUItem struct {
	RFID         string        `bson:"rfid" json:"RFID"`
	SKUID        int           `bson:"skuId" json:"SKUId"`
	Available    int           `bson:"available" json:"Available"`
	DateOfStock  string        `bson:"dateOfStock,omitempty" json:"DateOfStock,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
	DomainEvents []DomainEvent `bson:"-" json:"-"`
}

// NewSKUItem creates a new SKUItem. New items start unavailable until
// they pass quality testing.
func NewSKUItem(rfid string, skuID int, dateOfStock string) (*SKUItem, error) {
	if !ValidRFID(rfid) {
		return nil, ErrInvalidRFID
	}
	if skuID <= 0 {
		return nil, ErrInvalidSKUItem
	}
	if dateOfStock != "" {
		if _, err := ParseOrderDate(dateOfStock); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	item := &SKUItem{
		RFID:         rfid,
		SKUID:        skuID,
		Available:    0,
		DateOfStock:  dateOfStock,
		CreatedAt:    now,
		UpdatedAt:    now,
		DomainEvents: make([]DomainEvent, 0),
	}

	item.addDomainEvent(&SKUItemStockedEvent{
		RFID:        rfid,
		SKUID:       skuID,
		OccurredAt_: now,
	})

	return item, nil
}

// Update replaces the mutable SKU item fields, including the RFID
func (i *SKUItem) Update(newRFID string, newAvailable int, newDateOfStock string) error {
	if !ValidRFID(newRFID) {
		return ErrInvalidRFID
	}
	if newAvailable != 0 && newAvailable != 1 {
		return ErrInvalidSKUItem
	}
	if newDateOfStock != "" {
		if _, err := ParseOrderDate(newDateOfStock); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	previousRFID := i.RFID
	i.RFID = newRFID
	i.Available = newAvailable
	i.DateOfStock = newDateOfStock
	i.UpdatedAt = now

	i.addDomainEvent(&SKUItemModifiedEvent{
		RFID:         newRFID,
		PreviousRFID: previousRFID,
		SKUID:        i.SKUID,
		Available:    newAvailable,
		OccurredAt_:  now,
	})

	return nil
}

// IsAvailable reports whether the item passed testing and is stockable
func (i *SKUItem) IsAvailable() bool {
	return i.Available == 1
}

// addDomainEvent adds a domain event
func (i *SKUItem) addDomainEvent(event DomainEvent) {
	i.DomainEvents = append(i.DomainEvents, event)
}

// GetDomainEvents returns all domain events
func (i *SKUItem) GetDomainEvents() []DomainEvent {
	return i.DomainEvents
}

// ClearDomainEvents clears all domain events
func (i *SKUItem) ClearDomainEvents() {
	i.DomainEvents = make([]DomainEvent, 0)
}
