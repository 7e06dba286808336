// Package http exposes the marketplace use cases over a JSON API.
package http

import (
	"io"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler         commands.CheckoutCommandHandler
	releaseOrderHandler     commands.ReleaseOrderCommandHandler
	claimOrderHandler       commands.ClaimOrderCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	registerDriverHandler   commands.RegisterDriverCommandHandler

	// Query handlers
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getPendingOrdersHandler   queries.GetPendingOrdersQueryHandler
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler
	getActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
	getOrderHistoryHandler    queries.GetOrderHistoryQueryHandler
	lookupOrderHandler        queries.LookupOrderQueryHandler
	authenticateDriverHandler queries.AuthenticateDriverQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	releaseOrderHandler commands.ReleaseOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	lookupOrderHandler queries.LookupOrderQueryHandler,
	authenticateDriverHandler queries.AuthenticateDriverQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:           checkoutHandler,
		releaseOrderHandler:       releaseOrderHandler,
		claimOrderHandler:         claimOrderHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		registerDriverHandler:     registerDriverHandler,
		getAvailableOrdersHandler: getAvailableOrdersHandler,
		getPendingOrdersHandler:   getPendingOrdersHandler,
		getCompletedOrdersHandler: getCompletedOrdersHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
		getOrderHistoryHandler:    getOrderHistoryHandler,
		lookupOrderHandler:        lookupOrderHandler,
		authenticateDriverHandler: authenticateDriverHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders/checkout", s.Checkout)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/history", s.GetOrderHistory)
	api.GET("/orders/lookup/:confirmationNumber", s.LookupOrder)
	api.POST("/orders/:id/release", s.ReleaseOrder)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/complete", s.CompleteDelivery)

	api.POST("/drivers/register", s.RegisterDriver)
	api.POST("/drivers/login", s.Login)
	api.GET("/drivers/:driverId/pending", s.GetPendingOrders)
	api.GET("/drivers/:driverId/completed", s.GetCompletedOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Checkout handles POST /api/v1/orders/checkout. It converts the cart
// snapshot in the request into an order and returns the confirmation number
// the customer will track it with.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	items := make([]commands.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CartItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	cmd, err := commands.NewCheckoutCommand(req.CustomerName, req.DeliveryAddress, items)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:                 placed.ID().String(),
		OrderConfirmationNumber: placed.ConfirmationNumber().String(),
		TotalAmount:             placed.TotalAmount(),
		Status:                  placed.Status().String(),
	})
}

// ReleaseOrder handles POST /api/v1/orders/:id/release. Staff marks the order
// cooked and packed, publishing it to the driver pool.
func (s *Server) ReleaseOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewReleaseOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.releaseOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimOrder handles POST /api/v1/orders/:id/claim. Exactly one of several
// concurrent claims succeeds; the rest get 409.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req ClaimRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid driver id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	claimed, err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(claimed))
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete. Multipart form:
// driverId field plus the proof photo under "photo".
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	driverID, err := kernel.UUIDFromString(ctx.FormValue("driverId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid driver id")
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "delivery photo is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "could not read delivery photo")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "could not read delivery photo")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, driverID, fileHeader.Filename, content)
	if err != nil {
		return respondError(ctx, err)
	}

	delivered, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(delivered))
}

// RegisterDriver handles POST /api/v1/drivers/register.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req RegisterDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRegisterDriverCommand(
		req.Username, req.Password, req.FullName,
		req.VehicleModel, req.VehicleColor, req.LicensePlate,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	registered, err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, DriverResponse{
		DriverID: registered.ID().String(),
		Username: registered.Username(),
		FullName: registered.FullName(),
	})
}

// Login handles POST /api/v1/drivers/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	query, err := queries.NewAuthenticateDriverQuery(req.Username, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	identity, err := s.authenticateDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DriverResponse{
		DriverID: identity.DriverID.String(),
		Username: identity.Username,
		FullName: identity.FullName,
	})
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	views, err := s.getAvailableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromViews(views))
}

// GetActiveOrders handles GET /api/v1/orders/active with an optional
// customerName filter.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery(ctx.QueryParam("customerName"))

	views, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromViews(views))
}

// GetOrderHistory handles GET /api/v1/orders/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	views, err := s.getOrderHistoryHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrderHistoryQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromViews(views))
}

// LookupOrder handles GET /api/v1/orders/lookup/:confirmationNumber.
func (s *Server) LookupOrder(ctx echo.Context) error {
	code, err := kernel.ConfirmationNumberFromString(ctx.Param("confirmationNumber"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid confirmation number")
	}

	query, err := queries.NewLookupOrderQuery(code)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.lookupOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// GetPendingOrders handles GET /api/v1/drivers/:driverId/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid driver id")
	}

	query, err := queries.NewGetPendingOrdersQuery(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromViews(views))
}

// GetCompletedOrders handles GET /api/v1/drivers/:driverId/completed.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid driver id")
	}

	query, err := queries.NewGetCompletedOrdersQuery(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getCompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromViews(views))
}
