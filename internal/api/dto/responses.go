package dto

// RestockOrderResponse is the wire representation of a restock order
type RestockOrderResponse struct {
	ID            int                    `json:"id"`
	IssueDate     string                 `json:"issueDate"`
	State         string                 `json:"state"`
	Products      []ProductLineResponse  `json:"products"`
	SupplierID    int                    `json:"supplierId"`
	TransportNote *TransportNoteResponse `json:"transportNote,omitempty"`
	SKUItems      []SKUItemRefResponse   `json:"skuItems"`
}

// ProductLineResponse is an ordered product line
type ProductLineResponse struct {
	SKUID       int     `json:"SKUId"`
	ItemID      int     `json:"itemId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
}

// TransportNoteResponse is the carrier's delivery note
type TransportNoteResponse struct {
	DeliveryDate string `json:"deliveryDate"`
}

// SKUItemRefResponse references a received physical item
type SKUItemRefResponse struct {
	SKUID  int    `json:"SKUId"`
	ItemID int    `json:"itemId"`
	RFID   string `json:"rfid"`
}

// ReturnItemResponse is a returnable item of a COMPLETEDRETURN order
type ReturnItemResponse struct {
	SKUID int    `json:"SKUId"`
	RFID  string `json:"rfid"`
}

// SKUResponse is the wire representation of a catalogue entry
type SKUResponse struct {
	ID                int     `json:"id"`
	Description       string  `json:"description"`
	Weight            float64 `json:"weight"`
	Volume            float64 `json:"volume"`
	Notes             string  `json:"notes"`
	Position          string  `json:"position,omitempty"`
	AvailableQuantity int     `json:"availableQuantity"`
	Price             float64 `json:"price"`
	TestDescriptors   []int   `json:"testDescriptors"`
}

// PositionResponse is the wire representation of a warehouse slot
type PositionResponse struct {
	PositionID     string  `json:"positionID"`
	AisleID        string  `json:"aisleID"`
	Row            string  `json:"row"`
	Col            string  `json:"col"`
	MaxWeight      float64 `json:"maxWeight"`
	MaxVolume      float64 `json:"maxVolume"`
	OccupiedWeight float64 `json:"occupiedWeight"`
	OccupiedVolume float64 `json:"occupiedVolume"`
}

// SKUItemResponse is the wire representation of a physical instance
type SKUItemResponse struct {
	RFID        string `json:"RFID"`
	SKUID       int    `json:"SKUId"`
	Available   int    `json:"Available"`
	DateOfStock string `json:"DateOfStock,omitempty"`
}

// InternalOrderResponse is the wire representation of an internal order
type InternalOrderResponse struct {
	ID             int                         `json:"id"`
	IssueDate      string                      `json:"issueDate"`
	State          string                      `json:"state"`
	Products       []InternalOrderLineResponse `json:"products"`
	CustomerID     int                         `json:"customerId"`
	CompletedItems []CompletedItemResponse     `json:"completedItems,omitempty"`
}

// InternalOrderLineResponse is an ordered product line
type InternalOrderLineResponse struct {
	SKUID       int     `json:"SKUId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
}

// CompletedItemResponse is a delivered instance of a completed order
type CompletedItemResponse struct {
	SKUID int    `json:"SkuID"`
	RFID  string `json:"RFID"`
}
