package domain

import (
	"regexp"
	"time"
)

var (
	positionIDPattern      = regexp.MustCompile(`^\d{12}$`)
	positionSegmentPattern = regexp.MustCompile(`^\d{4}$`)
)

// ValidPositionID reports whether id is a 12-digit position identifier
func ValidPositionID(id string) bool {
	return positionIDPattern.MatchString(id)
}

// ValidPositionSegment reports whether segment is a 4-digit aisle, row or col
func ValidPositionSegment(segment string) bool {
	return positionSegmentPattern.MatchString(segment)
}

// Position is a physical warehouse slot. The id is the concatenation of
// the 4-digit aisle, row and col segments.
type Position struct {
	ID             string    `bson:"positionId" json:"positionID"`
	AisleID        string    `bson:"aisleId" json:"aisleID"`
	Row            string    `bson:"row" json:"row"`
	Col            string    `bson:"col" json:"col"`
	MaxWeight      float64   `bson:"maxWeight" json:"maxWeight"`
	MaxVolume      float64   `bson:"maxVolume" json:"maxVolume"`
	OccupiedWeight float64   `bson:"occupiedWeight" json:"occupiedWeight"`
	OccupiedVolume float64   `bson:"occupiedVolume" json:"occupiedVolume"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewPosition creates a position from its id and segments. The id must
// equal aisle+row+col.
func NewPosition(id, aisle, row, col string, maxWeight, maxVolume float64) (*Position, error) {
	if !ValidPositionSegment(aisle) || !ValidPositionSegment(row) || !ValidPositionSegment(col) {
		return nil, ErrInvalidPositionID
	}
	if !ValidPositionID(id) || id != aisle+row+col {
		return nil, ErrInvalidPositionID
	}
	if maxWeight < 0 || maxVolume < 0 {
		return nil, ErrInvalidPositionID
	}

	now := time.Now().UTC()
	return &Position{
		ID:        id,
		AisleID:   aisle,
		Row:       row,
		Col:       col,
		MaxWeight: maxWeight,
		MaxVolume: maxVolume,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces all mutable fields, relabeling the id from the segments
func (p *Position) Update(aisle, row, col string, maxWeight, maxVolume, occupiedWeight, occupiedVolume float64) error {
	if !ValidPositionSegment(aisle) || !ValidPositionSegment(row) || !ValidPositionSegment(col) {
		return ErrInvalidPositionID
	}
	if maxWeight < 0 || maxVolume < 0 || occupiedWeight < 0 || occupiedVolume < 0 {
		return ErrInvalidPositionID
	}

	p.ID = aisle + row + col
	p.AisleID = aisle
	p.Row = row
	p.Col = col
	p.MaxWeight = maxWeight
	p.MaxVolume = maxVolume
	p.OccupiedWeight = occupiedWeight
	p.OccupiedVolume = occupiedVolume
	p.UpdatedAt = time.Now().UTC()

	return nil
}

// ChangeID relabels the position, recomputing the segments from the new id
func (p *Position) ChangeID(newID string) error {
	if !ValidPositionID(newID) {
		return ErrInvalidPositionID
	}

	p.ID = newID
	p.AisleID = newID[0:4]
	p.Row = newID[4:8]
	p.Col = newID[8:12]
	p.UpdatedAt = time.Now().UTC()

	return nil
}

// SetOccupied sets the occupied capacity figures. Occupied exceeding the
// maximum is not rejected here.
func (p *Position) SetOccupied(weight, volume float64) {
	p.OccupiedWeight = weight
	p.OccupiedVolume = volume
	p.UpdatedAt = time.Now().UTC()
}

// AddOccupied increases the occupied capacity figures
func (p *Position) AddOccupied(weight, volume float64) {
	p.OccupiedWeight += weight
	p.OccupiedVolume += volume
	p.UpdatedAt = time.Now().UTC()
}

// ResetOccupied clears the occupied capacity figures
func (p *Position) ResetOccupied() {
	p.SetOccupied(0, 0)
}
