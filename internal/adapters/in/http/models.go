package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CheckoutRequest carries the cart snapshot and delivery details.
type CheckoutRequest struct {
	CustomerName    string            `json:"customerName"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Items           []CartItemRequest `json:"items"`
}

// CartItemRequest is one cart line in a checkout request.
type CartItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CheckoutResponse is what the customer keeps: the confirmation number is
// their only handle on the order.
type CheckoutResponse struct {
	OrderID                 string  `json:"orderId"`
	OrderConfirmationNumber string  `json:"orderConfirmationNumber"`
	TotalAmount             float64 `json:"totalAmount"`
	Status                  string  `json:"status"`
}

// ClaimRequest identifies the claiming driver.
type ClaimRequest struct {
	DriverID string `json:"driverId"`
}

// RegisterDriverRequest carries a driver signup.
type RegisterDriverRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	VehicleModel string `json:"vehicleModel"`
	VehicleColor string `json:"vehicleColor"`
	LicensePlate string `json:"licensePlate"`
}

// LoginRequest carries driver credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DriverResponse is the identity returned on registration and login.
type DriverResponse struct {
	DriverID string `json:"driverId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// ItemResponse is one cart line in an order payload.
type ItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderResponse is the full order payload shared by the board, history, and
// lookup endpoints.
type OrderResponse struct {
	ID                      string         `json:"id"`
	OrderConfirmationNumber string         `json:"orderConfirmationNumber"`
	CustomerName            string         `json:"customerName"`
	DeliveryAddress         string         `json:"deliveryAddress"`
	Items                   []ItemResponse `json:"items"`
	TotalAmount             float64        `json:"totalAmount"`
	Status                  string         `json:"status"`
	IsAssigned              bool           `json:"isAssigned"`
	SelectedByDriver        *string        `json:"selectedByDriver,omitempty"`
	DriverLicensePlate      string         `json:"driverLicensePlate,omitempty"`
	DeliveryPhoto           string         `json:"deliveryPhoto,omitempty"`
	CreatedAt               time.Time      `json:"createdAt"`
	DeliveredAt             *time.Time     `json:"deliveredAt,omitempty"`
}

func orderResponseFromView(view queries.OrderView) OrderResponse {
	items := make([]ItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, ItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	var selectedBy *string
	if view.SelectedByDriver != nil {
		id := view.SelectedByDriver.String()
		selectedBy = &id
	}

	return OrderResponse{
		ID:                      view.ID.String(),
		OrderConfirmationNumber: view.ConfirmationNumber,
		CustomerName:            view.CustomerName,
		DeliveryAddress:         view.DeliveryAddress,
		Items:                   items,
		TotalAmount:             view.TotalAmount,
		Status:                  view.Status,
		IsAssigned:              view.IsAssigned,
		SelectedByDriver:        selectedBy,
		DriverLicensePlate:      view.DriverLicensePlate,
		DeliveryPhoto:           view.DeliveryPhoto,
		CreatedAt:               view.CreatedAt,
		DeliveredAt:             view.DeliveredAt,
	}
}

func orderResponseFromViews(views []queries.OrderView) []OrderResponse {
	responses := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, orderResponseFromView(view))
	}
	return responses
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	var selectedBy *string
	if id := o.SelectedByDriver(); id != nil {
		s := id.String()
		selectedBy = &s
	}

	return OrderResponse{
		ID:                      o.ID().String(),
		OrderConfirmationNumber: o.ConfirmationNumber().String(),
		CustomerName:            o.CustomerName(),
		DeliveryAddress:         o.DeliveryAddress(),
		Items:                   items,
		TotalAmount:             o.TotalAmount(),
		Status:                  o.Status().String(),
		IsAssigned:              o.IsAssigned(),
		SelectedByDriver:        selectedBy,
		DriverLicensePlate:      o.DriverLicensePlate(),
		DeliveryPhoto:           o.DeliveryPhoto(),
		CreatedAt:               o.CreatedAt(),
		DeliveredAt:             o.DeliveredAt(),
	}
}
