// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemDTO is one cart line inside the items document.
type ItemDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ItemsJSON stores the immutable cart snapshot as a jsonb document. Items are
// written once at checkout and never updated independently, so a document
// column fits better than a child table.
type ItemsJSON []ItemDTO

func (j ItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *ItemsJSON) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	case nil:
		*j = nil
		return nil
	default:
		return fmt.Errorf("unsupported source type %T for items", src)
	}
}

// GormDataType tells the migrator to create a jsonb column.
func (ItemsJSON) GormDataType() string {
	return "jsonb"
}

// OrderDTO represents the database row for an order aggregate. The
// confirmation number carries a unique index; status and driver are indexed
// for the board queries.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ConfirmationNumber string     `gorm:"column:order_confirmation_number;type:varchar(9);uniqueIndex"`
	CustomerName       string     `gorm:"index"`
	DeliveryAddress    string
	Items              ItemsJSON  `gorm:"type:jsonb"`
	TotalAmount        float64
	Status             string     `gorm:"index"`
	SelectedByDriver   *uuid.UUID `gorm:"type:uuid;index"`
	DriverLicensePlate string
	DeliveryPhoto      string
	CreatedAt          time.Time
	DeliveredAt        *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var selectedBy *uuid.UUID
	if id := aggregate.SelectedByDriver(); id != nil {
		raw := id.Bytes()
		selectedBy = &raw
	}

	items := make(ItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		ConfirmationNumber: aggregate.ConfirmationNumber().String(),
		CustomerName:       aggregate.CustomerName(),
		DeliveryAddress:    aggregate.DeliveryAddress(),
		Items:              items,
		TotalAmount:        aggregate.TotalAmount(),
		Status:             aggregate.Status().String(),
		SelectedByDriver:   selectedBy,
		DriverLicensePlate: aggregate.DriverLicensePlate(),
		DeliveryPhoto:      aggregate.DeliveryPhoto(),
		CreatedAt:          aggregate.CreatedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	confirmationNumber, err := kernel.ConfirmationNumberFromString(dto.ConfirmationNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var selectedBy *kernel.UUID
	if dto.SelectedByDriver != nil {
		driverID, idErr := kernel.UUIDFromBytes((*dto.SelectedByDriver)[:])
		if idErr != nil {
			return nil, idErr
		}
		selectedBy = &driverID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		confirmationNumber,
		dto.CustomerName,
		dto.DeliveryAddress,
		items,
		dto.TotalAmount,
		dto.CreatedAt,
		status,
		selectedBy,
		dto.DriverLicensePlate,
		dto.DeliveryPhoto,
		dto.DeliveredAt,
	)
}
