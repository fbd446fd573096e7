package domain

import "context"

// RestockOrderRepository defines the interface for restock order persistence
type RestockOrderRepository interface {
	// NextID allocates the next order id
	NextID(ctx context.Context) (int, error)

	// Save persists a restock order (upsert by order id)
	Save(ctx context.Context, order *RestockOrder) error

	// FindByID retrieves an order by id, (nil, nil) when absent
	FindByID(ctx context.Context, id int) (*RestockOrder, error)

	// FindAll retrieves all orders
	FindAll(ctx context.Context) ([]*RestockOrder, error)

	// FindByState retrieves orders in the given state
	FindByState(ctx context.Context, state RestockOrderState) ([]*RestockOrder, error)

	// Delete removes an order; deleting an absent order is not an error
	Delete(ctx context.Context, id int) error
}

// SKURepository defines the interface for SKU persistence
type SKURepository interface {
	NextID(ctx context.Context) (int, error)
	Save(ctx context.Context, sku *SKU) error
	FindByID(ctx context.Context, id int) (*SKU, error)
	FindAll(ctx context.Context) ([]*SKU, error)

	// FindByPosition retrieves the SKU holding a position, (nil, nil) when free
	FindByPosition(ctx context.Context, positionID string) (*SKU, error)

	Delete(ctx context.Context, id int) error
}

// PositionRepository defines the interface for position persistence
type PositionRepository interface {
	// Insert creates a position; a duplicate id is an error
	Insert(ctx context.Context, position *Position) error

	// Save persists a position under its current id (upsert)
	Save(ctx context.Context, position *Position) error

	FindByID(ctx context.Context, positionID string) (*Position, error)
	FindAll(ctx context.Context) ([]*Position, error)

	// Replace removes the position stored under oldID and persists the
	// relabeled position
	Replace(ctx context.Context, oldID string, position *Position) error

	Delete(ctx context.Context, positionID string) error
}

// SKUItemRepository defines the interface for SKU item persistence
type SKUItemRepository interface {
	Save(ctx context.Context, item *SKUItem) error
	FindByRFID(ctx context.Context, rfid string) (*SKUItem, error)
	FindAll(ctx context.Context) ([]*SKUItem, error)

	// FindAvailableBySKU retrieves the available instances of a SKU
	FindAvailableBySKU(ctx context.Context, skuID int) ([]*SKUItem, error)

	// FindByRFIDs retrieves the instances matching the given RFIDs
	FindByRFIDs(ctx context.Context, rfids []string) ([]*SKUItem, error)

	// Replace removes the item stored under oldRFID and persists the
	// updated item
	Replace(ctx context.Context, oldRFID string, item *SKUItem) error

	Delete(ctx context.Context, rfid string) error
}

// InternalOrderRepository defines the interface for internal order persistence
type InternalOrderRepository interface {
	NextID(ctx context.Context) (int, error)
	Save(ctx context.Context, order *InternalOrder) error
	FindByID(ctx context.Context, id int) (*InternalOrder, error)
	FindAll(ctx context.Context) ([]*InternalOrder, error)
	FindByState(ctx context.Context, state InternalOrderState) ([]*InternalOrder, error)
	Delete(ctx context.Context, id int) error
}

// SupplierRepository backs the restock order dependency check
type SupplierRepository interface {
	// Exists reports whether a supplier with the given id is known
	Exists(ctx context.Context, supplierID int) (bool, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish publishes a domain event
	Publish(ctx context.Context, event DomainEvent) error

	// PublishAll publishes multiple domain events
	PublishAll(ctx context.Context, events []DomainEvent) error
}
