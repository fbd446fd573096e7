package domain

import (
	"errors"
	"time"
)

// Internal order errors
var (
	ErrInternalOrderNotFound = errors.New("internal order not found")
	ErrMissingCompletedItems = errors.New("completed order requires delivered items")
)

// InternalOrderLine represents an ordered product on an internal order
type InternalOrderLine struct {
	SKUID       int     `bson:"skuId" json:"SKUId"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Qty         int     `bson:"qty" json:"qty"`
}

// Validate checks the internal order line fields
func (l InternalOrderLine) Validate() error {
	if l.SKUID <= 0 || l.Price <= 0 || l.Qty < 0 {
		return ErrInvalidProductLine
	}
	return nil
}

// CompletedItem is a delivered instance recorded when an internal order
// reaches COMPLETED
type CompletedItem struct {
	SKUID int    `bson:"skuId" json:"SkuID"`
	RFID  string `bson:"rfid" json:"RFID"`
}

// Validate checks the completed item fields
func (c CompletedItem) Validate() error {
	if c.SKUID <= 0 {
		return ErrInvalidSKUReference
	}
	if !ValidRFID(c.RFID) {
		return ErrInvalidRFID
	}
	return nil
}

// InternalOrder is the aggregate root for customer orders
type InternalOrder struct {
	ID             int                 `bson:"orderId" json:"id"`
	IssueDate      string              `bson:"issueDate" json:"issueDate"`
	State          InternalOrderState  `bson:"state" json:"state"`
	Products       []InternalOrderLine `bson:"products" json:"products"`
	CustomerID     int                 `bson:"customerId" json:"customerId"`
	CompletedItems []CompletedItem     `bson:"completedItems,omitempty" json:"completedItems,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
	DomainEvents   []DomainEvent       `bson:"-" json:"-"`
}

// NewInternalOrder creates a new InternalOrder aggregate in state ISSUED
func NewInternalOrder(id int, issueDate string, products []InternalOrderLine, customerID int) (*InternalOrder, error) {
	if _, err := ParseOrderDate(issueDate); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	for _, line := range products {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	if customerID <= 0 {
		return nil, ErrInvalidProductLine
	}

	now := time.Now().UTC()
	order := &InternalOrder{
		ID:           id,
		IssueDate:    issueDate,
		State:        InternalStateIssued,
		Products:     products,
		CustomerID:   customerID,
		CreatedAt:    now,
		UpdatedAt:    now,
		DomainEvents: make([]DomainEvent, 0),
	}

	order.addDomainEvent(&InternalOrderIssuedEvent{
		OrderID:     id,
		CustomerID:  customerID,
		IssueDate:   issueDate,
		LineCount:   len(products),
		OccurredAt_: now,
	})

	return order, nil
}

// ChangeState moves the order to the target state. COMPLETED requires the
// delivered items; other targets ignore them.
func (o *InternalOrder) ChangeState(target InternalOrderState, completedItems []CompletedItem) error {
	if !target.IsValid() {
		return ErrUnknownState
	}

	if target == InternalStateCompleted {
		if len(completedItems) == 0 {
			return ErrMissingCompletedItems
		}
		for _, item := range completedItems {
			if err := item.Validate(); err != nil {
				return err
			}
		}
		o.CompletedItems = completedItems
	}

	from := o.State
	now := time.Now().UTC()
	o.State = target
	o.UpdatedAt = now

	o.addDomainEvent(&InternalOrderStateChangedEvent{
		OrderID:     o.ID,
		FromState:   string(from),
		ToState:     string(target),
		OccurredAt_: now,
	})

	return nil
}

// addDomainEvent adds a domain event
func (o *InternalOrder) addDomainEvent(event DomainEvent) {
	o.DomainEvents = append(o.DomainEvents, event)
}

// GetDomainEvents returns all domain events
func (o *InternalOrder) GetDomainEvents() []DomainEvent {
	return o.DomainEvents
}

// ClearDomainEvents clears all domain events
func (o *InternalOrder) ClearDomainEvents() {
	o.DomainEvents = make([]DomainEvent, 0)
}
