package dto

// CreateRestockOrderRequest creates a new restock order
type CreateRestockOrderRequest struct {
	IssueDate  string               `json:"issueDate" binding:"required,order_date"`
	Products   []ProductLineRequest `json:"products" binding:"required,min=1,dive"`
	SupplierID int                  `json:"supplierId" binding:"required,min=1"`
}

// ProductLineRequest is an ordered product on a restock order
type ProductLineRequest struct {
	SKUID       int     `json:"SKUId" binding:"required,min=1"`
	ItemID      int     `json:"itemId" binding:"required,min=1"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Qty         int     `json:"qty" binding:"min=0"`
}

// UpdateRestockStateRequest moves a restock order to a new state. The
// products are the delivered items, required when the target is COMPLETED.
type UpdateRestockStateRequest struct {
	NewState string                `json:"newState" binding:"required"`
	Products []StateProductRequest `json:"products,omitempty" binding:"omitempty,dive"`
}

// StateProductRequest is a delivered item reference on a state change
type StateProductRequest struct {
	SKUID int    `json:"SKUId" binding:"required,min=1"`
	RFID  string `json:"RFID" binding:"required,rfid"`
}

// AttachSKUItemsRequest appends received items to a restock order
type AttachSKUItemsRequest struct {
	SKUItems []SKUItemRefRequest `json:"skuItems" binding:"required,min=1,dive"`
}

// SKUItemRefRequest references a received physical item
type SKUItemRefRequest struct {
	SKUID  int    `json:"SKUId" binding:"required,min=1"`
	ItemID int    `json:"itemId" binding:"required,min=1"`
	RFID   string `json:"rfid" binding:"required,rfid"`
}

// AddTransportNoteRequest records the carrier's delivery note
type AddTransportNoteRequest struct {
	TransportNote TransportNoteRequest `json:"transportNote" binding:"required"`
}

// TransportNoteRequest carries the delivery date
type TransportNoteRequest struct {
	DeliveryDate string `json:"deliveryDate" binding:"required,order_date"`
}

// CreateSKURequest creates a new catalogue entry
type CreateSKURequest struct {
	Description       string  `json:"description" binding:"required"`
	Weight            float64 `json:"weight" binding:"min=0"`
	Volume            float64 `json:"volume" binding:"min=0"`
	Notes             string  `json:"notes"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	AvailableQuantity int     `json:"availableQuantity" binding:"min=0"`
}

// UpdateSKURequest replaces the mutable fields of a SKU
type UpdateSKURequest struct {
	NewDescription       string  `json:"newDescription" binding:"required"`
	NewWeight            float64 `json:"newWeight" binding:"min=0"`
	NewVolume            float64 `json:"newVolume" binding:"min=0"`
	NewNotes             string  `json:"newNotes"`
	NewPrice             float64 `json:"newPrice" binding:"required,gt=0"`
	NewAvailableQuantity int     `json:"newAvailableQuantity" binding:"min=0"`
}

// AssignPositionRequest stores a SKU's stock at a position
type AssignPositionRequest struct {
	Position string `json:"position" binding:"required,position_id"`
}

// CreatePositionRequest creates a new warehouse slot
type CreatePositionRequest struct {
	PositionID string  `json:"positionID" binding:"required,position_id"`
	AisleID    string  `json:"aisleID" binding:"required,position_segment"`
	Row        string  `json:"row" binding:"required,position_segment"`
	Col        string  `json:"col" binding:"required,position_segment"`
	MaxWeight  float64 `json:"maxWeight" binding:"min=0"`
	MaxVolume  float64 `json:"maxVolume" binding:"min=0"`
}

// UpdatePositionRequest replaces all mutable fields of a position
type UpdatePositionRequest struct {
	NewAisleID        string  `json:"newAisleID" binding:"required,position_segment"`
	NewRow            string  `json:"newRow" binding:"required,position_segment"`
	NewCol            string  `json:"newCol" binding:"required,position_segment"`
	NewMaxWeight      float64 `json:"newMaxWeight" binding:"min=0"`
	NewMaxVolume      float64 `json:"newMaxVolume" binding:"min=0"`
	NewOccupiedWeight float64 `json:"newOccupiedWeight" binding:"min=0"`
	NewOccupiedVolume float64 `json:"newOccupiedVolume" binding:"min=0"`
}

// ChangePositionIDRequest relabels a position
type ChangePositionIDRequest struct {
	NewPositionID string `json:"newPositionID" binding:"required,position_id"`
}

// CreateSKUItemRequest registers a physical instance
type CreateSKUItemRequest struct {
	RFID        string `json:"RFID" binding:"required,rfid"`
	SKUID       int    `json:"SKUId" binding:"required,min=1"`
	DateOfStock string `json:"DateOfStock" binding:"omitempty,order_date"`
}

// UpdateSKUItemRequest updates a physical instance
type UpdateSKUItemRequest struct {
	NewRFID        string `json:"newRFID" binding:"required,rfid"`
	NewAvailable   *int   `json:"newAvailable" binding:"required,min=0,max=1"`
	NewDateOfStock string `json:"newDateOfStock" binding:"omitempty,order_date"`
}

// CreateInternalOrderRequest creates a new internal order
type CreateInternalOrderRequest struct {
	IssueDate  string                     `json:"issueDate" binding:"required,order_date"`
	Products   []InternalOrderLineRequest `json:"products" binding:"required,min=1,dive"`
	CustomerID int                        `json:"customerId" binding:"required,min=1"`
}

// InternalOrderLineRequest is an ordered product on an internal order
type InternalOrderLineRequest struct {
	SKUID       int     `json:"SKUId" binding:"required,min=1"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Qty         int     `json:"qty" binding:"min=0"`
}

// UpdateInternalOrderRequest moves an internal order to a new state. The
// products are the delivered items, required when the target is COMPLETED.
type UpdateInternalOrderRequest struct {
	NewState string                 `json:"newState" binding:"required"`
	Products []CompletedItemRequest `json:"products,omitempty" binding:"omitempty,dive"`
}

// CompletedItemRequest is a delivered instance on a completed order
type CompletedItemRequest struct {
	SKUID int    `json:"SkuID" binding:"required,min=1"`
	RFID  string `json:"RFID" binding:"required,rfid"`
}
