package domain

import (
	"errors"
	"regexp"
	"time"
)

// Restock order errors
var (
	ErrRestockOrderNotFound = errors.New("restock order not found")
	ErrUnknownState         = errors.New("unknown order state")
	ErrWrongOrderState      = errors.New("operation not allowed in current state")
	ErrInvalidDate          = errors.New("invalid order date")
	ErrFutureDate           = errors.New("order date is in the future")
	ErrEarlyDeliveryDate    = errors.New("delivery date precedes issue date")
	ErrNoProducts           = errors.New("order must have at least one product line")
	ErrInvalidProductLine   = errors.New("invalid product line")
	ErrInvalidRFID          = errors.New("rfid must be 32 digits")
	ErrInvalidSKUReference  = errors.New("invalid sku reference")
	ErrSupplierNotFound     = errors.New("supplier not found")
)

var rfidPattern = regexp.MustCompile(`^\d{32}$`)

// ValidRFID reports whether rfid is a 32-digit identifier
func ValidRFID(rfid string) bool {
	return rfidPattern.MatchString(rfid)
}

// ProductLine represents an ordered product on a restock order
type ProductLine struct {
	SKUID       int     `bson:"skuId" json:"SKUId"`
	ItemID      int     `bson:"itemId" json:"itemId"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Qty         int     `bson:"qty" json:"qty"`
}

// Validate checks the product line fields
func (p ProductLine) Validate() error {
	if p.SKUID <= 0 || p.ItemID <= 0 || p.Price <= 0 || p.Qty < 0 {
		return ErrInvalidProductLine
	}
	return nil
}

// SKUItemRef references a physical item received against an order
type SKUItemRef struct {
	SKUID  int    `bson:"skuId" json:"SKUId"`
	ItemID int    `bson:"itemId" json:"itemId"`
	RFID   string `bson:"rfid" json:"rfid"`
}

// Validate checks the sku item reference fields
func (s SKUItemRef) Validate() error {
	if s.SKUID <= 0 || s.ItemID <= 0 {
		return ErrInvalidSKUReference
	}
	if !ValidRFID(s.RFID) {
		return ErrInvalidRFID
	}
	return nil
}

// TransportNote carries the carrier's delivery information
type TransportNote struct {
	DeliveryDate string `bson:"deliveryDate" json:"deliveryDate"`
}

// RestockOrder is the aggregate root for supplier replenishment orders
type RestockOrder struct {
	ID            int               `bson:"orderId" json:"id"`
	IssueDate     string            `bson:"issueDate" json:"issueDate"`
	State         RestockOrderState `bson:"state" json:"state"`
	Products      []ProductLine     `bson:"products" json:"products"`
	SupplierID    int               `bson:"supplierId" json:"supplierId"`
	TransportNote *TransportNote    `bson:"transportNote,omitempty" json:"transportNote,omitempty"`
	SKUItems      []SKUItemRef      `bson:"skuItems" json:"skuItems"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
	DomainEvents  []DomainEvent     `bson:"-" json:"-"`
}

// NewRestockOrder creates a new RestockOrder aggregate in state ISSUED
func NewRestockOrder(id int, issueDate string, products []ProductLine, supplierID int) (*RestockOrder, error) {
	if _, err := ParseOrderDate(issueDate); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	if supplierID <= 0 {
		return nil, ErrInvalidProductLine
	}

	now := time.Now().UTC()
	order := &RestockOrder{
		ID:           id,
		IssueDate:    issueDate,
		State:        RestockStateIssued,
		Products:     products,
		SupplierID:   supplierID,
		SKUItems:     make([]SKUItemRef, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
		DomainEvents: make([]DomainEvent, 0),
	}

	order.addDomainEvent(&RestockOrderIssuedEvent{
		OrderID:     id,
		SupplierID:  supplierID,
		IssueDate:   issueDate,
		LineCount:   len(products),
		OccurredAt_: now,
	})

	return order, nil
}

// ChangeState moves the order to the target state. Any known token is
// accepted regardless of the current state; the nominal
// ISSUED-DELIVERY-DELIVERED-TESTED-COMPLETED progression is not enforced.
// COMPLETED requires the delivered items, which are appended to the order;
// other targets ignore them. Delivered items carry no item id, so only the
// sku reference and the RFID are checked.
func (o *RestockOrder) ChangeState(target RestockOrderState, deliveredItems []SKUItemRef) error {
	if !target.IsValid() {
		return ErrUnknownState
	}

	if target == RestockStateCompleted {
		if len(deliveredItems) == 0 {
			return ErrMissingCompletedItems
		}
		for _, item := range deliveredItems {
			if item.SKUID <= 0 {
				return ErrInvalidSKUReference
			}
			if !ValidRFID(item.RFID) {
				return ErrInvalidRFID
			}
		}
		o.SKUItems = append(o.SKUItems, deliveredItems...)
	}

	from := o.State
	now := time.Now().UTC()
	o.State = target
	o.UpdatedAt = now

	o.addDomainEvent(&RestockOrderStateChangedEvent{
		OrderID:     o.ID,
		FromState:   string(from),
		ToState:     string(target),
		OccurredAt_: now,
	})

	return nil
}

// AttachSKUItems appends received items to the order. Only allowed while
// the order is in state DELIVERED.
func (o *RestockOrder) AttachSKUItems(items []SKUItemRef) error {
	if o.State != RestockStateDelivered {
		return ErrWrongOrderState
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	o.SKUItems = append(o.SKUItems, items...)
	o.UpdatedAt = now

	o.addDomainEvent(&SKUItemsAttachedEvent{
		OrderID:     o.ID,
		ItemCount:   len(items),
		OccurredAt_: now,
	})

	return nil
}

// AttachTransportNote records the carrier's delivery date. The date is
// validated against the issue date before the state is checked, so an
// early delivery date is rejected in any state.
func (o *RestockOrder) AttachTransportNote(note TransportNote) error {
	deliveryDate, err := ParseOrderDate(note.DeliveryDate)
	if err != nil {
		return err
	}
	issueDate, err := ParseOrderDate(o.IssueDate)
	if err != nil {
		return err
	}
	if deliveryDate.Before(issueDate) {
		return ErrEarlyDeliveryDate
	}

	if o.State != RestockStateDelivery {
		return ErrWrongOrderState
	}

	now := time.Now().UTC()
	o.TransportNote = &note
	o.UpdatedAt = now

	o.addDomainEvent(&TransportNoteAddedEvent{
		OrderID:      o.ID,
		DeliveryDate: note.DeliveryDate,
		OccurredAt_:  now,
	})

	return nil
}

// ReturnItems extracts the attached items whose instances failed quality
// testing. failedRFIDs maps RFID to a failed flag; items not present in
// the map are treated as passed. Only allowed in state COMPLETEDRETURN.
func (o *RestockOrder) ReturnItems(failedRFIDs map[string]bool) ([]SKUItemRef, error) {
	if o.State != RestockStateCompletedReturn {
		return nil, ErrWrongOrderState
	}

	returned := make([]SKUItemRef, 0)
	for _, item := range o.SKUItems {
		if failedRFIDs[item.RFID] {
			returned = append(returned, item)
		}
	}

	return returned, nil
}

// addDomainEvent adds a domain event
func (o *RestockOrder) addDomainEvent(event DomainEvent) {
	o.DomainEvents = append(o.DomainEvents, event)
}

// GetDomainEvents returns all domain events
func (o *RestockOrder) GetDomainEvents() []DomainEvent {
	return o.DomainEvents
}

// ClearDomainEvents clears all domain events
func (o *RestockOrder) ClearDomainEvents() {
	o.DomainEvents = make([]DomainEvent, 0)
}
