package domain

import (
	"errors"
	"time"
)

// Stock errors
var (
	ErrSKUNotFound           = errors.New("sku not found")
	ErrInvalidSKU            = errors.New("invalid sku")
	ErrPositionNotFound      = errors.New("position not found")
	ErrInvalidPositionID     = errors.New("invalid position id")
	ErrPositionTaken         = errors.New("position already assigned to another sku")
	ErrPositionAlreadyExists = errors.New("position already exists")
)

// SKU is the aggregate root for catalogue entries
type SKU struct {
	ID                int           `bson:"skuId" json:"id"`
	Description       string        `bson:"description" json:"description"`
	Weight            float64       `bson:"weight" json:"weight"`
	Volume            float64       `bson:"volume" json:"volume"`
	Notes             string        `bson:"notes" json:"notes"`
	Price             float64       `bson:"price" json:"price"`
	AvailableQuantity int           `bson:"availableQuantity" json:"availableQuantity"`
	Position          string        `bson:"position,omitempty" json:"position,omitempty"`
	TestDescriptors   []int         `bson:"testDescriptors" json:"testDescriptors"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updatedAt" json:"updatedAt"`
	DomainEvents      []DomainEvent `bson:"-" json:"-"`
}

// NewSKU creates a new SKU aggregate
func NewSKU(id int, description string, weight, volume float64, notes string, price float64, availableQuantity int) (*SKU, error) {
	if weight < 0 || volume < 0 || price <= 0 || availableQuantity < 0 {
		return nil, ErrInvalidSKU
	}

	now := time.Now().UTC()
	sku := &SKU{
		ID:                id,
		Description:       description,
		Weight:            weight,
		Volume:            volume,
		Notes:             notes,
		Price:             price,
		AvailableQuantity: availableQuantity,
		TestDescriptors:   make([]int, 0),
		CreatedAt:         now,
		UpdatedAt:         now,
		DomainEvents:      make([]DomainEvent, 0),
	}

	sku.addDomainEvent(&SKUCreatedEvent{
		SKUID:       id,
		Description: description,
		OccurredAt_: now,
	})

	return sku, nil
}

// OccupiedWeight returns the total weight the SKU stock occupies
func (s *SKU) OccupiedWeight() float64 {
	return float64(s.AvailableQuantity) * s.Weight
}

// OccupiedVolume returns the total volume the SKU stock occupies
func (s *SKU) OccupiedVolume() float64 {
	return float64(s.AvailableQuantity) * s.Volume
}

// Update replaces the mutable SKU fields
func (s *SKU) Update(description string, weight, volume float64, notes string, price float64, availableQuantity int) error {
	if weight < 0 || volume < 0 || price <= 0 || availableQuantity < 0 {
		return ErrInvalidSKU
	}

	now := time.Now().UTC()
	s.Description = description
	s.Weight = weight
	s.Volume = volume
	s.Notes = notes
	s.Price = price
	s.AvailableQuantity = availableQuantity
	s.UpdatedAt = now

	s.addDomainEvent(&SKUModifiedEvent{
		SKUID:       s.ID,
		OccurredAt_: now,
	})

	return nil
}

// AssignPosition records the position the SKU stock is stored at
func (s *SKU) AssignPosition(positionID string) error {
	if !ValidPositionID(positionID) {
		return ErrInvalidPositionID
	}

	now := time.Now().UTC()
	s.Position = positionID
	s.UpdatedAt = now

	s.addDomainEvent(&PositionAssignedEvent{
		SKUID:       s.ID,
		PositionID:  positionID,
		OccurredAt_: now,
	})

	return nil
}

// ReleasePosition clears the SKU's position back-reference
func (s *SKU) ReleasePosition() {
	if s.Position == "" {
		return
	}

	now := time.Now().UTC()
	released := s.Position
	s.Position = ""
	s.UpdatedAt = now

	s.addDomainEvent(&PositionReleasedEvent{
		SKUID:       s.ID,
		PositionID:  released,
		OccurredAt_: now,
	})
}

// addDomainEvent adds a domain event
func (s *SKU) addDomainEvent(event DomainEvent) {
	s.DomainEvents = append(s.DomainEvents, event)
}

// GetDomainEvents returns all domain events
func (s *SKU) GetDomainEvents() []DomainEvent {
	return s.DomainEvents
}

// ClearDomainEvents clears all domain events
func (s *SKU) ClearDomainEvents() {
	s.DomainEvents = make([]DomainEvent, 0)
}
