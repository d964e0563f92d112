// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordercompletion/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing on
// status for efficient completion sweeps.
type OrderDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement:false"`
	OrderDate time.Time
	Status    int            `gorm:"index"`
	Lines     []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents a single product line within an order.
// DeliveredQuantity stays NULL until the warehouse reports a delivery.
type OrderLineDTO struct {
	ID                int64 `gorm:"primaryKey"`
	OrderID           int64 `gorm:"index"`
	ProductID         int64
	OrderedQuantity   int
	DeliveredQuantity *int
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:           aggregate.ID(),
			ProductID:         line.ProductID(),
			OrderedQuantity:   line.OrderedQuantity(),
			DeliveredQuantity: line.DeliveredQuantity(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID(),
		OrderDate: aggregate.OrderDate(),
		Status:    int(aggregate.Status()),
		Lines:     lineDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, err := order.NewLine(lineDTO.ProductID, lineDTO.OrderedQuantity, lineDTO.DeliveredQuantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, dto.OrderDate, order.Status(dto.Status), lines)
}
