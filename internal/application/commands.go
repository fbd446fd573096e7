package application

import (
	"github.com/wms-platform/services/restock-service/internal/domain"
)

// CreateRestockOrderCommand creates a new restock order
type CreateRestockOrderCommand struct {
	IssueDate  string               `json:"issueDate" binding:"required"`
	Products   []domain.ProductLine `json:"products" binding:"required,min=1"`
	SupplierID int                  `json:"supplierId" binding:"required,min=1"`
}

// ChangeRestockStateCommand moves a restock order to a new state
type ChangeRestockStateCommand struct {
	OrderID  int
	NewState string
	// Delivered items, required when the target state is COMPLETED
	SKUItems []domain.SKUItemRef
}

// AttachSKUItemsCommand appends received items to a restock order
type AttachSKUItemsCommand struct {
	OrderID  int
	SKUItems []domain.SKUItemRef
}

// AttachTransportNoteCommand records the carrier's delivery note
type AttachTransportNoteCommand struct {
	OrderID       int
	TransportNote domain.TransportNote
}

// CreateSKUCommand creates a new catalogue entry
type CreateSKUCommand struct {
	Description       string  `json:"description" binding:"required"`
	Weight            float64 `json:"weight" binding:"min=0"`
	Volume            float64 `json:"volume" binding:"min=0"`
	Notes             string  `json:"notes"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	AvailableQuantity int     `json:"availableQuantity" binding:"min=0"`
}

// ModifySKUCommand replaces the mutable fields of a SKU
type ModifySKUCommand struct {
	SKUID             int
	Description       string
	Weight            float64
	Volume            float64
	Notes             string
	Price             float64
	AvailableQuantity int
}

// AssignPositionCommand stores a SKU's stock at a position
type AssignPositionCommand struct {
	SKUID      int
	PositionID string
}

// CreatePositionCommand creates a new warehouse slot
type CreatePositionCommand struct {
	PositionID string  `json:"positionID" binding:"required,position_id"`
	AisleID    string  `json:"aisleID" binding:"required,position_segment"`
	Row        string  `json:"row" binding:"required,position_segment"`
	Col        string  `json:"col" binding:"required,position_segment"`
	MaxWeight  float64 `json:"maxWeight" binding:"min=0"`
	MaxVolume  float64 `json:"maxVolume" binding:"min=0"`
}

// ModifyPositionCommand replaces all mutable fields of a position
type ModifyPositionCommand struct {
	PositionID        string
	NewAisleID        string
	NewRow            string
	NewCol            string
	NewMaxWeight      float64
	NewMaxVolume      float64
	NewOccupiedWeight float64
	NewOccupiedVolume float64
}

// ChangePositionIDCommand relabels a position
type ChangePositionIDCommand struct {
	OldPositionID string
	NewPositionID string
}

// CreateSKUItemCommand registers a physical instance
type CreateSKUItemCommand struct {
	RFID        string `json:"RFID" binding:"required,rfid"`
	SKUID       int    `json:"SKUId" binding:"required,min=1"`
	DateOfStock string `json:"DateOfStock"`
}

// ModifySKUItemCommand updates a physical instance
type ModifySKUItemCommand struct {
	RFID           string
	NewRFID        string
	NewAvailable   int
	NewDateOfStock string
}

// CreateInternalOrderCommand creates a new internal order
type CreateInternalOrderCommand struct {
	IssueDate  string                     `json:"issueDate" binding:"required"`
	Products   []domain.InternalOrderLine `json:"products" binding:"required,min=1"`
	CustomerID int                        `json:"customerId" binding:"required,min=1"`
}

// ChangeInternalStateCommand moves an internal order to a new state
type ChangeInternalStateCommand struct {
	OrderID  int
	NewState string
	// Delivered items, required when the target state is COMPLETED
	Products []domain.CompletedItem
}
