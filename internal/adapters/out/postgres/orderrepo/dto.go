package orderrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	OrderType     string
	DeliveryType  string
	Total         int64
	Status        string     `gorm:"index"`
	AgentID       *uuid.UUID `gorm:"type:uuid;index"`
	AssignmentID  *uuid.UUID `gorm:"type:uuid"`
	Latitude      *float64
	Longitude     *float64
	FailureReason string
	CreatedAt     time.Time
	Items         []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line with its price snapshot and the flags
// the preparation workflow writes.
type ItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	UnitPrice  int64
	Quantity   int
	LineTotal  int64
	OutOfStock bool
	Committed  bool
}

// TableName overrides GORM's default naming convention.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var agentID, assignmentID *uuid.UUID
	if id := o.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}
	if id := o.Assignment(); id != nil {
		raw := id.Bytes()
		assignmentID = &raw
	}

	var lat, lon *float64
	if loc := o.Location(); loc != nil {
		latV, lonV := loc.Latitude(), loc.Longitude()
		lat, lon = &latV, &lonV
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:    o.ID().Bytes(),
			ProductID:  item.ProductID().Bytes(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
			LineTotal:  item.LineTotal(),
			OutOfStock: item.IsOutOfStock(),
			Committed:  item.IsCommitted(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		CustomerID:    o.CustomerID().Bytes(),
		OrderType:     o.OrderType().String(),
		DeliveryType:  o.DeliveryType().String(),
		Total:         o.Total(),
		Status:        o.Status().String(),
		AgentID:       agentID,
		AssignmentID:  assignmentID,
		Latitude:      lat,
		Longitude:     lon,
		FailureReason: o.FailureReason(),
		Items:         items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			productID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity, itemDTO.OutOfStock, itemDTO.Committed,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var agentID, assignmentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes(dto.AgentID[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}
	if dto.AssignmentID != nil {
		asID, assignmentErr := kernel.UUIDFromBytes(dto.AssignmentID[:])
		if assignmentErr != nil {
			return nil, assignmentErr
		}
		assignmentID = &asID
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Type(dto.OrderType),
		order.DeliveryType(dto.DeliveryType),
		items,
		dto.Total,
		status,
		agentID,
		assignmentID,
		location,
		dto.FailureReason,
	)
}
