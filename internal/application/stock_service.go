package application

import (
	"context"
	"time"

	"github.com/wms-platform/services/restock-service/internal/domain"
	apperrors "github.com/wms-platform/services/restock-service/pkg/errors"
	"github.com/wms-platform/services/restock-service/pkg/logging"
	"github.com/wms-platform/services/restock-service/pkg/metrics"
)

// StockService handles SKU and position operations, including the
// propagation of occupied-capacity figures between them
type StockService struct {
	skus      domain.SKURepository
	positions domain.PositionRepository
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
	logger    *logging.Logger
}

// NewStockService creates a new StockService
func NewStockService(
	skus domain.SKURepository,
	positions domain.PositionRepository,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
	logger *logging.Logger,
) *StockService {
	return &StockService{
		skus:      skus,
		positions: positions,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// CreateSKU validates and persists a new catalogue entry
func (s *StockService) CreateSKU(ctx context.Context, cmd CreateSKUCommand) (*domain.SKU, error) {
	id, err := s.skus.NextID(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	sku, err := domain.NewSKU(id, cmd.Description, cmd.Weight, cmd.Volume, cmd.Notes, cmd.Price, cmd.AvailableQuantity)
	if err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.skus.Save(ctx, sku); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, sku.GetDomainEvents())
	sku.ClearDomainEvents()

	s.logger.Info("Created sku", "skuId", sku.ID, "description", sku.Description)
	return sku, nil
}

// GetSKU retrieves a SKU by id
func (s *StockService) GetSKU(ctx context.Context, id int) (*domain.SKU, error) {
	sku, err := s.skus.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if sku == nil {
		return nil, apperrors.ErrNotFoundWithID("sku", itoa(id))
	}
	return sku, nil
}

// ListSKUs retrieves all SKUs
func (s *StockService) ListSKUs(ctx context.Context) ([]*domain.SKU, error) {
	skus, err := s.skus.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	return skus, nil
}

// ModifySKU replaces the mutable SKU fields. When the SKU holds a
// position, the position's occupied figures are recomputed from the new
// quantity, weight and volume.
func (s *StockService) ModifySKU(ctx context.Context, cmd ModifySKUCommand) (*domain.SKU, error) {
	sku, err := s.GetSKU(ctx, cmd.SKUID)
	if err != nil {
		return nil, err
	}

	if err := sku.Update(cmd.Description, cmd.Weight, cmd.Volume, cmd.Notes, cmd.Price, cmd.AvailableQuantity); err != nil {
		return nil, mapDomainError(err)
	}

	if sku.Position != "" {
		if err := s.recomputeOccupancy(ctx, sku, "sku-modified"); err != nil {
			return nil, err
		}
	}

	if err := s.skus.Save(ctx, sku); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, sku.GetDomainEvents())
	sku.ClearDomainEvents()

	s.logger.Info("Modified sku", "skuId", sku.ID)
	return sku, nil
}

// AssignPosition stores a SKU's stock at a position. The new position's
// occupied figures grow by the SKU's qty*weight / qty*volume; the
// previous position, if any, is reset to zero. A position held by
// another SKU cannot be taken.
func (s *StockService) AssignPosition(ctx context.Context, cmd AssignPositionCommand) (*domain.SKU, error) {
	sku, err := s.GetSKU(ctx, cmd.SKUID)
	if err != nil {
		return nil, err
	}

	// Re-assigning the held position is a no-op; adding the SKU's figures
	// again would double-count the occupancy.
	if sku.Position == cmd.PositionID {
		return sku, nil
	}

	position, err := s.positions.FindByID(ctx, cmd.PositionID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if position == nil {
		return nil, apperrors.ErrNotFoundWithID("position", cmd.PositionID)
	}

	holder, err := s.skus.FindByPosition(ctx, cmd.PositionID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if holder != nil && holder.ID != sku.ID {
		return nil, mapDomainError(domain.ErrPositionTaken)
	}

	previousPositionID := sku.Position

	if err := sku.AssignPosition(cmd.PositionID); err != nil {
		return nil, mapDomainError(err)
	}

	position.AddOccupied(sku.OccupiedWeight(), sku.OccupiedVolume())
	if err := s.positions.Save(ctx, position); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	s.publishOccupancy(ctx, position, sku.ID, "position-assigned")

	// The vacated position is assumed to hold only this SKU's stock, so
	// its figures reset rather than delta-adjust.
	if previousPositionID != "" && previousPositionID != cmd.PositionID {
		if err := s.resetPosition(ctx, previousPositionID, sku.ID); err != nil {
			return nil, err
		}
	}

	if err := s.skus.Save(ctx, sku); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, sku.GetDomainEvents())
	sku.ClearDomainEvents()

	s.logger.Info("Assigned position to sku",
		"skuId", sku.ID,
		"positionId", cmd.PositionID,
		"previousPositionId", previousPositionID,
	)

	return sku, nil
}

// DeleteSKU removes a SKU, releasing any position it holds
func (s *StockService) DeleteSKU(ctx context.Context, id int) error {
	sku, err := s.skus.FindByID(ctx, id)
	if err != nil {
		return apperrors.ErrPersistence(err)
	}
	if sku == nil {
		return apperrors.ErrNotFoundWithID("sku", itoa(id))
	}

	if sku.Position != "" {
		if err := s.resetPosition(ctx, sku.Position, sku.ID); err != nil {
			return err
		}
	}

	if err := s.skus.Delete(ctx, id); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, []domain.DomainEvent{
		&domain.SKUDeletedEvent{SKUID: id, OccurredAt_: time.Now().UTC()},
	})

	s.logger.Info("Deleted sku", "skuId", id)
	return nil
}

// CreatePosition creates a new warehouse slot. Duplicate ids are rejected.
func (s *StockService) CreatePosition(ctx context.Context, cmd CreatePositionCommand) (*domain.Position, error) {
	existing, err := s.positions.FindByID(ctx, cmd.PositionID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if existing != nil {
		return nil, mapDomainError(domain.ErrPositionAlreadyExists)
	}

	position, err := domain.NewPosition(cmd.PositionID, cmd.AisleID, cmd.Row, cmd.Col, cmd.MaxWeight, cmd.MaxVolume)
	if err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.positions.Insert(ctx, position); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.logger.Info("Created position", "positionId", position.ID)
	return position, nil
}

// ListPositions retrieves all positions
func (s *StockService) ListPositions(ctx context.Context) ([]*domain.Position, error) {
	positions, err := s.positions.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	return positions, nil
}

// ModifyPosition replaces all mutable position fields, including the id
// derived from the new segments. The SKU back-reference follows the
// relabeled id.
func (s *StockService) ModifyPosition(ctx context.Context, cmd ModifyPositionCommand) (*domain.Position, error) {
	position, err := s.positions.FindByID(ctx, cmd.PositionID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if position == nil {
		return nil, apperrors.ErrNotFoundWithID("position", cmd.PositionID)
	}

	oldID := position.ID
	if err := position.Update(cmd.NewAisleID, cmd.NewRow, cmd.NewCol,
		cmd.NewMaxWeight, cmd.NewMaxVolume, cmd.NewOccupiedWeight, cmd.NewOccupiedVolume); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.positions.Replace(ctx, oldID, position); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	if err := s.relabelHolder(ctx, oldID, position.ID); err != nil {
		return nil, err
	}

	s.logger.Info("Modified position", "positionId", position.ID, "previousId", oldID)
	return position, nil
}

// ChangePositionID relabels a position, recomputing its segments
func (s *StockService) ChangePositionID(ctx context.Context, cmd ChangePositionIDCommand) (*domain.Position, error) {
	position, err := s.positions.FindByID(ctx, cmd.OldPositionID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if position == nil {
		return nil, apperrors.ErrNotFoundWithID("position", cmd.OldPositionID)
	}

	if err := position.ChangeID(cmd.NewPositionID); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.positions.Replace(ctx, cmd.OldPositionID, position); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	if err := s.relabelHolder(ctx, cmd.OldPositionID, position.ID); err != nil {
		return nil, err
	}

	s.logger.Info("Relabeled position", "positionId", position.ID, "previousId", cmd.OldPositionID)
	return position, nil
}

// DeletePosition removes a slot, clearing the back-reference of any SKU
// holding it
func (s *StockService) DeletePosition(ctx context.Context, positionID string) error {
	holder, err := s.skus.FindByPosition(ctx, positionID)
	if err != nil {
		return apperrors.ErrPersistence(err)
	}
	if holder != nil {
		holder.ReleasePosition()
		if err := s.skus.Save(ctx, holder); err != nil {
			return apperrors.ErrPersistence(err)
		}
		s.publishEvents(ctx, holder.GetDomainEvents())
		holder.ClearDomainEvents()
	}

	if err := s.positions.Delete(ctx, positionID); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.logger.Info("Deleted position", "positionId", positionID)
	return nil
}

// recomputeOccupancy sets the held position's figures to the SKU's
// current qty*weight / qty*volume
func (s *StockService) recomputeOccupancy(ctx context.Context, sku *domain.SKU, reason string) error {
	position, err := s.positions.FindByID(ctx, sku.Position)
	if err != nil {
		return apperrors.ErrPersistence(err)
	}
	if position == nil {
		return apperrors.ErrNotFoundWithID("position", sku.Position)
	}

	position.SetOccupied(sku.OccupiedWeight(), sku.OccupiedVolume())
	if err := s.positions.Save(ctx, position); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.publishOccupancy(ctx, position, sku.ID, reason)
	return nil
}

// resetPosition zeroes a position's occupied figures
func (s *StockService) resetPosition(ctx context.Context, positionID string, skuID int) error {
	position, err := s.positions.FindByID(ctx, positionID)
	if err != nil {
		return apperrors.ErrPersistence(err)
	}
	if position == nil {
		return nil
	}

	position.ResetOccupied()
	if err := s.positions.Save(ctx, position); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.publishOccupancy(ctx, position, skuID, "position-released")
	return nil
}

// relabelHolder moves the SKU back-reference from oldID to newID
func (s *StockService) relabelHolder(ctx context.Context, oldID, newID string) error {
	if oldID == newID {
		return nil
	}
	holder, err := s.skus.FindByPosition(ctx, oldID)
	if err != nil {
		return apperrors.ErrPersistence(err)
	}
	if holder == nil {
		return nil
	}

	if err := holder.AssignPosition(newID); err != nil {
		return mapDomainError(err)
	}
	if err := s.skus.Save(ctx, holder); err != nil {
		return apperrors.ErrPersistence(err)
	}
	holder.ClearDomainEvents()
	return nil
}

func (s *StockService) publishOccupancy(ctx context.Context, position *domain.Position, skuID int, reason string) {
	if s.metrics != nil {
		s.metrics.RecordOccupancyUpdate(reason)
	}
	s.publishEvents(ctx, []domain.DomainEvent{
		&domain.OccupancyRecomputedEvent{
			PositionID:     position.ID,
			SKUID:          skuID,
			OccupiedWeight: position.OccupiedWeight,
			OccupiedVolume: position.OccupiedVolume,
			Reason:         reason,
			OccurredAt_:    time.Now().UTC(),
		},
	})
}

func (s *StockService) publishEvents(ctx context.Context, events []domain.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.PublishAll(ctx, events); err != nil {
		s.logger.WithError(err).Warn("Failed to publish stock events")
	}
}
