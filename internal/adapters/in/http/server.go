// Package http exposes the application's operations over an echo server.
// Each endpoint has its own named request and response structs; requests are
// validated with go-playground/validator before a command is built.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"aquaflow/internal/core/application/usecases/commands"
	"aquaflow/internal/core/application/usecases/queries"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator adapts go-playground/validator to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// ErrorResponse is the JSON body for every failed request. Message names the
// specific failing condition, not a generic rollback notice.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string                   `json:"customer_id" validate:"required,uuid"`
	ShippingAddress string                   `json:"shipping_address" validate:"required"`
	Comments        string                   `json:"comments"`
	Lines           []CreateOrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// CreateOrderLineRequest is one line of a new order.
type CreateOrderLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ConfirmOrderResponse reports a successful confirmation.
type ConfirmOrderResponse struct {
	Status string `json:"status"`
}

// CancelOrderResponse reports a successful cancellation.
type CancelOrderResponse struct {
	Status string `json:"status"`
}

// CompleteDeliveryResponse reports a completed trip.
type CompleteDeliveryResponse struct {
	Status string `json:"status"`
}

// RestockLotResponse reports a successful restock.
type RestockLotResponse struct {
	Status string `json:"status"`
}

// SetPrincipalRoleResponse reports a successful principal role change.
type SetPrincipalRoleResponse struct {
	Status string `json:"status"`
}

// RegisterEmployeeRequest is the body for POST /api/v1/employees.
type RegisterEmployeeRequest struct {
	FullName        string   `json:"full_name" validate:"required"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email" validate:"required,email"`
	PrincipalRoleID string   `json:"principal_role_id" validate:"required,uuid"`
	ExtraRoleIDs    []string `json:"extra_role_ids" validate:"dive,uuid"`
}

// RegisterEmployeeResponse returns the identifier of the new employee.
type RegisterEmployeeResponse struct {
	ID string `json:"id"`
}

// SetPrincipalRoleRequest is the body for PUT /api/v1/employees/:id/principal-role.
type SetPrincipalRoleRequest struct {
	RoleID string `json:"role_id" validate:"required,uuid"`
}

// RestockLotRequest is the body for POST /api/v1/inventory/lots/:id/restock.
type RestockLotRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// PendingOrderResponse is one order awaiting confirmation.
type PendingOrderResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	ShippingAddress string    `json:"shipping_address"`
	TotalCents      int64     `json:"total_cents"`
	PlacedAt        time.Time `json:"placed_at"`
}

// LowStockLotResponse is one lot at or below its reorder point.
type LowStockLotResponse struct {
	LotID        string `json:"lot_id"`
	LotNumber    string `json:"lot_number"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	ReorderPoint int    `json:"reorder_point"`
}

// ActiveDeliveryResponse is one trip currently on the road.
type ActiveDeliveryResponse struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	CourierName      string    `json:"courier_name"`
	DepartureAt      time.Time `json:"departure_at"`
	EstimatedArrival time.Time `json:"estimated_arrival"`
	Status           string    `json:"status"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	confirmOrderHandler     commands.ConfirmOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	registerEmployeeHandler commands.RegisterEmployeeCommandHandler
	setPrincipalRoleHandler commands.SetPrincipalRoleCommandHandler
	restockLotHandler       commands.RestockLotCommandHandler

	getPendingOrdersHandler    queries.GetPendingOrdersQueryHandler
	getLowStockLotsHandler     queries.GetLowStockLotsQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	registerEmployeeHandler commands.RegisterEmployeeCommandHandler,
	setPrincipalRoleHandler commands.SetPrincipalRoleCommandHandler,
	restockLotHandler commands.RestockLotCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getLowStockLotsHandler queries.GetLowStockLotsQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		confirmOrderHandler:        confirmOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		registerEmployeeHandler:    registerEmployeeHandler,
		setPrincipalRoleHandler:    setPrincipalRoleHandler,
		restockLotHandler:          restockLotHandler,
		getPendingOrdersHandler:    getPendingOrdersHandler,
		getLowStockLotsHandler:     getLowStockLotsHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
	}
}

// RegisterRoutes installs the request validator and all endpoints on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = newRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)

	api.GET("/inventory/low-stock", s.GetLowStockLots)
	api.POST("/inventory/lots/:id/restock", s.RestockLot)

	api.POST("/employees", s.RegisterEmployee)
	api.PUT("/employees/:id/principal-role", s.SetPrincipalRole)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// bearerToken extracts the shared secret from the Authorization header.
// Returns the empty string when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return token
}

// CreateOrder handles POST /api/v1/orders - places a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid customer id")
	}

	lines := make([]commands.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid product id")
		}
		lines = append(lines, commands.OrderLineInput{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, req.ShippingAddress, req.Comments, lines)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownProduct),
			errors.Is(err, commands.ErrProductIsInactive),
			errors.Is(err, commands.ErrInsufficientStock):
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "failed to create order")
		}
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm - runs the
// confirmation workflow. The caller authenticates with a shared-secret
// bearer token.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, bearerToken(ctx.Request()))
	if err != nil {
		return errorJSON(ctx, http.StatusForbidden, "missing confirmation token")
	}

	if err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidConfirmationToken):
			return errorJSON(ctx, http.StatusForbidden, "invalid confirmation token")
		case errors.Is(err, commands.ErrOrderNotFound):
			return errorJSON(ctx, http.StatusNotFound, "order not found")
		case errors.Is(err, commands.ErrOrderIsNotPending),
			errors.Is(err, commands.ErrInsufficientStock),
			errors.Is(err, commands.ErrNoCourierAvailable),
			errors.Is(err, commands.ErrRoutingUnavailable):
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrTransient):
			return errorJSON(ctx, http.StatusServiceUnavailable, "confirmation temporarily unavailable, retry later")
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "failed to confirm order")
		}
	}

	return ctx.JSON(http.StatusOK, ConfirmOrderResponse{Status: "confirmed"})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			return errorJSON(ctx, http.StatusNotFound, "order not found")
		case errors.Is(err, commands.ErrOrderIsNotPending):
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "failed to cancel order")
		}
	}

	return ctx.JSON(http.StatusOK, CancelOrderResponse{Status: "cancelled"})
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve pending orders")
	}

	response := make([]PendingOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, PendingOrderResponse{
			ID:              o.ID.String(),
			CustomerID:      o.CustomerID.String(),
			ShippingAddress: o.ShippingAddress,
			TotalCents:      o.TotalCents,
			PlacedAt:        o.PlacedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete - marks a trip
// delivered and frees its courier.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid delivery id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrDeliveryNotFound):
			return errorJSON(ctx, http.StatusNotFound, "delivery not found")
		case errors.Is(err, errs.ErrValueIsInvalid):
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "failed to complete delivery")
		}
	}

	return ctx.JSON(http.StatusOK, CompleteDeliveryResponse{Status: "delivered"})
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve active deliveries")
	}

	response := make([]ActiveDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		response = append(response, ActiveDeliveryResponse{
			ID:               d.ID.String(),
			OrderID:          d.OrderID.String(),
			CourierName:      d.CourierName,
			DepartureAt:      d.DepartureAt,
			EstimatedArrival: d.EstimatedArrival,
			Status:           d.Status,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockLots handles GET /api/v1/inventory/low-stock.
func (s *Server) GetLowStockLots(ctx echo.Context) error {
	lots, err := s.getLowStockLotsHandler.Handle(ctx.Request().Context(), queries.NewGetLowStockLotsQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve low stock lots")
	}

	response := make([]LowStockLotResponse, 0, len(lots))
	for _, lot := range lots {
		response = append(response, LowStockLotResponse{
			LotID:        lot.LotID.String(),
			LotNumber:    lot.LotNumber,
			ProductName:  lot.ProductName,
			Quantity:     lot.Quantity,
			ReorderPoint: lot.ReorderPoint,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RestockLot handles POST /api/v1/inventory/lots/:id/restock.
func (s *Server) RestockLot(ctx echo.Context) error {
	lotID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid lot id")
	}

	var req RestockLotRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRestockLotCommand(lotID, req.Quantity)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.restockLotHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrLotNotFound):
			return errorJSON(ctx, http.StatusNotFound, "lot not found")
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "failed to restock lot")
		}
	}

	return ctx.JSON(http.StatusOK, RestockLotResponse{Status: "restocked"})
}

// RegisterEmployee handles POST /api/v1/employees - registers an employee
// with a principal role, provisioning a system account when the role
// requires one.
func (s *Server) RegisterEmployee(ctx echo.Context) error {
	var req RegisterEmployeeRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	principalRoleID, err := kernel.UUIDFromString(req.PrincipalRoleID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid principal role id")
	}

	extraRoleIDs := make([]kernel.UUID, 0, len(req.ExtraRoleIDs))
	for _, raw := range req.ExtraRoleIDs {
		roleID, roleErr := kernel.UUIDFromString(raw)
		if roleErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid extra role id")
		}
		extraRoleIDs = append(extraRoleIDs, roleID)
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewRegisterEmployeeCommand(employeeID, req.FullName, req.Phone, req.Email, principalRoleID, extraRoleIDs)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.registerEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoleNotFound):
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "failed to register employee")
		}
	}

	return ctx.JSON(http.StatusCreated, RegisterEmployeeResponse{ID: employeeID.String()})
}

// SetPrincipalRole handles PUT /api/v1/employees/:id/principal-role - makes
// the given role the employee's single principal role.
func (s *Server) SetPrincipalRole(ctx echo.Context) error {
	employeeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid employee id")
	}

	var req SetPrincipalRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	roleID, err := kernel.UUIDFromString(req.RoleID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid role id")
	}

	cmd, err := commands.NewSetPrincipalRoleCommand(employeeID, roleID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.setPrincipalRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrEmployeeNotFound):
			return errorJSON(ctx, http.StatusNotFound, "employee not found")
		case errors.Is(err, commands.ErrRoleNotFound):
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "failed to set principal role")
		}
	}

	return ctx.JSON(http.StatusOK, SetPrincipalRoleResponse{Status: "principal role set"})
}
