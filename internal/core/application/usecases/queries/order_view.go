// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning flat read models shaped for the callers.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemView is one cart line as recorded at checkout.
type ItemView struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderView is the flat read model shared by the order list queries and the
// confirmation-number lookup. IsAssigned is derived: an order is assigned the
// moment it leaves Received.
type OrderView struct {
	ID                 kernel.UUID
	ConfirmationNumber string
	CustomerName       string
	DeliveryAddress    string
	Items              []ItemView
	TotalAmount        float64
	Status             string
	IsAssigned         bool
	SelectedByDriver   *kernel.UUID
	DriverLicensePlate string
	DeliveryPhoto      string
	CreatedAt          time.Time
	DeliveredAt        *time.Time
}

// orderViewColumns is the select list every order read uses, in scan order.
const orderViewColumns = `
	id,
	order_confirmation_number,
	customer_name,
	delivery_address,
	items,
	total_amount,
	status,
	selected_by_driver,
	driver_license_plate,
	delivery_photo,
	created_at,
	delivered_at
`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var view OrderView
	var id uuid.UUID
	var itemsJSON []byte
	var selectedBy uuid.NullUUID
	var deliveredAt sql.NullTime

	err := rows.Scan(
		&id,
		&view.ConfirmationNumber,
		&view.CustomerName,
		&view.DeliveryAddress,
		&itemsJSON,
		&view.TotalAmount,
		&view.Status,
		&selectedBy,
		&view.DriverLicensePlate,
		&view.DeliveryPhoto,
		&view.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	view.ID = orderID

	if err = json.Unmarshal(itemsJSON, &view.Items); err != nil {
		return OrderView{}, err
	}

	if selectedBy.Valid {
		driverID, idErr := kernel.UUIDFromBytes(selectedBy.UUID[:])
		if idErr != nil {
			return OrderView{}, idErr
		}
		view.SelectedByDriver = &driverID
	}

	if deliveredAt.Valid {
		at := deliveredAt.Time
		view.DeliveredAt = &at
	}

	view.IsAssigned = view.Status != order.Received.String()

	return view, nil
}

func collectOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
