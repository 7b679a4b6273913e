// Package http exposes the rental lifecycle over a JSON API. Every route
// maps onto one command or query; the handlers only translate between the
// wire format and the use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and the application use cases.
type Server struct {
	reservateHandler         commands.ReservateOrderCommandHandler
	updateReservationHandler commands.UpdateReservationCommandHandler
	cancelReservationHandler commands.CancelReservationCommandHandler
	checkInHandler           commands.CheckInOrderCommandHandler
	packHandler              commands.PackOrderCommandHandler
	confirmPackingHandler    commands.ConfirmPackingCommandHandler
	extendHandler            commands.ExtendRentalCommandHandler
	startRentalHandler       commands.StartRentalCommandHandler
	returnHandler            commands.ReturnRentalCommandHandler
	partialReturnHandler     commands.PartialReturnCommandHandler
	reboxHandler             commands.ReboxOrderCommandHandler
	paybackHandler           commands.PaybackOrderCommandHandler

	receiptHandler queries.GetOrderReceiptQueryHandler
	overdueHandler queries.GetOverdueRentalsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	reservateHandler commands.ReservateOrderCommandHandler,
	updateReservationHandler commands.UpdateReservationCommandHandler,
	cancelReservationHandler commands.CancelReservationCommandHandler,
	checkInHandler commands.CheckInOrderCommandHandler,
	packHandler commands.PackOrderCommandHandler,
	confirmPackingHandler commands.ConfirmPackingCommandHandler,
	extendHandler commands.ExtendRentalCommandHandler,
	startRentalHandler commands.StartRentalCommandHandler,
	returnHandler commands.ReturnRentalCommandHandler,
	partialReturnHandler commands.PartialReturnCommandHandler,
	reboxHandler commands.ReboxOrderCommandHandler,
	paybackHandler commands.PaybackOrderCommandHandler,
	receiptHandler queries.GetOrderReceiptQueryHandler,
	overdueHandler queries.GetOverdueRentalsQueryHandler,
) *Server {
	return &Server{
		reservateHandler:         reservateHandler,
		updateReservationHandler: updateReservationHandler,
		cancelReservationHandler: cancelReservationHandler,
		checkInHandler:           checkInHandler,
		packHandler:              packHandler,
		confirmPackingHandler:    confirmPackingHandler,
		extendHandler:            extendHandler,
		startRentalHandler:       startRentalHandler,
		returnHandler:            returnHandler,
		partialReturnHandler:     partialReturnHandler,
		reboxHandler:             reboxHandler,
		paybackHandler:           paybackHandler,
		receiptHandler:           receiptHandler,
		overdueHandler:           overdueHandler,
	}
}

// RegisterRoutes mounts every lifecycle route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/orders", s.ReservateOrder)
	api.PUT("/orders/:id/reservation", s.UpdateReservation)
	api.DELETE("/orders/:id", s.CancelReservation)
	api.POST("/orders/:id/check-in", s.CheckInOrder)
	api.POST("/orders/:id/pack", s.PackOrder)
	api.POST("/orders/:id/confirm", s.ConfirmPacking)
	api.POST("/orders/:id/extend", s.ExtendRental)
	api.POST("/orders/:id/rental", s.StartRental)
	api.POST("/orders/:id/return", s.ReturnRental)
	api.POST("/orders/:id/partial-return", s.PartialReturn)
	api.POST("/orders/:id/rebox", s.ReboxOrder)
	api.POST("/orders/:id/payback", s.PaybackOrder)
	api.GET("/orders/:id/receipt", s.GetOrderReceipt)
	api.GET("/rentals/overdue", s.GetOverdueRentals)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps use case failures onto HTTP statuses: unknown objects are
// 404, rejected values and transitions are 400, the rest is 500.
func writeError(c echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func orderIDParam(c echo.Context) (int64, bool) {
	var id int64
	if err := echo.PathParamsBinder(c).Int64("id", &id).BindError(); err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type reservateOrderRequest struct {
	UserID   int64  `json:"user_id"`
	VisitAt  string `json:"visit_at"`
	Online   bool   `json:"online"`
	Agent    bool   `json:"agent"`
	Purpose  string `json:"purpose"`
	CouponID *int64 `json:"coupon_id"`
}

// ReservateOrder handles POST /api/v1/orders.
func (s *Server) ReservateOrder(c echo.Context) error {
	var req reservateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	visitAt, err := time.Parse(time.RFC3339, req.VisitAt)
	if err != nil {
		return badRequest(c, "visit_at must be RFC3339")
	}

	cmd, err := commands.NewReservateOrderCommand(
		req.UserID, visitAt, req.Online, req.Agent, req.Purpose, req.CouponID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.reservateHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

type updateReservationRequest struct {
	VisitAt  string `json:"visit_at"`
	CouponID *int64 `json:"coupon_id,omitempty"`
}

// UpdateReservation handles PUT /api/v1/orders/:id/reservation.
func (s *Server) UpdateReservation(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}
	var req updateReservationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	visitAt, err := time.Parse(time.RFC3339, req.VisitAt)
	if err != nil {
		return badRequest(c, "visit_at must be RFC3339")
	}

	cmd, err := commands.NewUpdateReservationCommand(id, visitAt, req.CouponID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.updateReservationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

// CancelReservation handles DELETE /api/v1/orders/:id.
func (s *Server) CancelReservation(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewCancelReservationCommand(id)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.cancelReservationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

// CheckInOrder handles POST /api/v1/orders/:id/check-in.
func (s *Server) CheckInOrder(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewCheckInOrderCommand(id)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.checkInHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

type packOrderRequest struct {
	ClothesCodes []string `json:"clothes_codes"`
}

// PackOrder handles POST /api/v1/orders/:id/pack.
func (s *Server) PackOrder(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}
	var req packOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewPackOrderCommand(id, req.ClothesCodes)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.packHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

// ConfirmPacking handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmPacking(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewConfirmPackingCommand(id)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.confirmPackingHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

type extendRentalRequest struct {
	Days int `json:"days"`
}

// ExtendRental handles POST /api/v1/orders/:id/extend.
func (s *Server) ExtendRental(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}
	var req extendRentalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewExtendRentalCommand(id, req.Days)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.extendHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

type bodyRequest struct {
	Height int `json:"height"`
	Weight int `json:"weight"`
	Chest  int `json:"chest"`
	Waist  int `json:"waist"`
	Foot   int `json:"foot"`
}

type startRentalRequest struct {
	PayWith string       `json:"pay_with"`
	Body    *bodyRequest `json:"body"`
}

// StartRental handles POST /api/v1/orders/:id/rental.
func (s *Server) StartRental(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}
	var req startRentalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var body *order.BodySnapshot
	if req.Body != nil {
		body = &order.BodySnapshot{
			Height: req.Body.Height,
			Weight: req.Body.Weight,
			Chest:  req.Body.Chest,
			Waist:  req.Body.Waist,
			Foot:   req.Body.Foot,
		}
	}

	cmd, err := commands.NewStartRentalCommand(id, req.PayWith, body)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.startRentalHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

type returnRentalRequest struct {
	ReturnedAt          string `json:"returned_at"`
	ByMail              bool   `json:"by_mail"`
	LateFeeWaiver       int    `json:"late_fee_waiver"`
	LateFeePayWith      string `json:"late_fee_pay_with"`
	Compensation        int    `json:"compensation"`
	CompensationName    string `json:"compensation_name"`
	CompensationWaiver  int    `json:"compensation_waiver"`
	CompensationPayWith string `json:"compensation_pay_with"`
}

// ReturnRental handles POST /api/v1/orders/:id/return.
func (s *Server) ReturnRental(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}
	var req returnRentalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	returnedAt, err := time.Parse(time.RFC3339, req.ReturnedAt)
	if err != nil {
		return badRequest(c, "returned_at must be RFC3339")
	}

	cmd, err := commands.NewReturnRentalCommand(
		id, returnedAt, req.ByMail,
		req.LateFeeWaiver, req.LateFeePayWith,
		req.Compensation, req.CompensationName,
		req.CompensationWaiver, req.CompensationPayWith,
	)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.returnHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

type partialReturnRequest struct {
	ReturnedAt          string  `json:"returned_at"`
	ReturnedClothesIDs  []int64 `json:"returned_clothes_ids"`
	LateFeeWaiver       int     `json:"late_fee_waiver"`
	LateFeePayWith      string  `json:"late_fee_pay_with"`
	Compensation        int     `json:"compensation"`
	CompensationName    string  `json:"compensation_name"`
	CompensationWaiver  int     `json:"compensation_waiver"`
	CompensationPayWith string  `json:"compensation_pay_with"`
}

// PartialReturn handles POST /api/v1/orders/:id/partial-return.
func (s *Server) PartialReturn(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}
	var req partialReturnRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	returnedAt, err := time.Parse(time.RFC3339, req.ReturnedAt)
	if err != nil {
		return badRequest(c, "returned_at must be RFC3339")
	}

	cmd, err := commands.NewPartialReturnCommand(
		id, returnedAt, req.ReturnedClothesIDs,
		req.LateFeeWaiver, req.LateFeePayWith,
		req.Compensation, req.CompensationName,
		req.CompensationWaiver, req.CompensationPayWith,
	)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.partialReturnHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

// ReboxOrder handles POST /api/v1/orders/:id/rebox.
func (s *Server) ReboxOrder(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewReboxOrderCommand(id)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.reboxHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

type paybackOrderRequest struct {
	RefundCharge int    `json:"refund_charge"`
	PayWith      string `json:"pay_with"`
}

// PaybackOrder handles POST /api/v1/orders/:id/payback.
func (s *Server) PaybackOrder(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}
	var req paybackOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewPaybackOrderCommand(id, req.RefundCharge, req.PayWith)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.paybackHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

// GetOrderReceipt handles GET /api/v1/orders/:id/receipt.
func (s *Server) GetOrderReceipt(c echo.Context) error {
	id, ok := orderIDParam(c)
	if !ok {
		return badRequest(c, "Invalid order id")
	}

	query, err := queries.NewGetOrderReceiptQuery(id)
	if err != nil {
		return badRequest(c, err.Error())
	}

	receipt, err := s.receiptHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}

// GetOverdueRentals handles GET /api/v1/rentals/overdue.
func (s *Server) GetOverdueRentals(c echo.Context) error {
	query, err := queries.NewGetOverdueRentalsQuery(time.Now())
	if err != nil {
		return writeError(c, err)
	}

	overdue, err := s.overdueHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, overdue)
}
