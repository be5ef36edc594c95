package api

import (
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

// BookingHandler drives checkout, confirmation, cancellation and the gateway
// webhook, plus the guest's reservation and payment views.
type BookingHandler struct {
	cmds         commands.BookingCommands
	reservations queries.ReservationQueries
	payments     queries.PaymentQueries
}

func NewBookingHandler(cmds commands.BookingCommands, reservations queries.ReservationQueries, payments queries.PaymentQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, reservations: reservations, payments: payments}
}

// @Summary Checkout
// @Description Price the selected rooms for the stay and open a payment intent
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	guestID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		invalid(c, err)
		return
	}
	res, err := h.cmds.Checkout(c.Request.Context(), cmd, guestID)
	if err != nil {
		httperr.Abort(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(res))
}

// @Summary Confirm payment
// @Description Ask the gateway for the intent status and confirm the reservation once paid
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.ConfirmResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	paymentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	guestID, _, ok := actor(c)
	if !ok {
		return
	}
	res, err := h.cmds.Confirm(c.Request.Context(), paymentID, guestID)
	if err != nil {
		httperr.Abort(c, err, "Confirm payment failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmResult(res))
}

// @Summary Payment webhook
// @Description Gateway event callback; the body is verified against the signature header
// @Tags bookings
// @Accept json
// @Param Stripe-Signature header string true "Gateway signature"
// @Success 200 "OK"
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/payments [post]
func (h *BookingHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		invalid(c, err)
		return
	}
	if err := h.cmds.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader)); err != nil {
		httperr.Abort(c, err, "Webhook not processed")
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Cancel reservation
// @Description Cancel an own confirmed reservation ahead of the notice window and refund it
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), reservationID, actorID); err != nil {
		httperr.Abort(c, err, "Cancel reservation failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get reservation
// @Description Get a reservation visible to its guest or the property owner
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *BookingHandler) GetReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.reservations.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load reservation")
		return
	}
	render[resdto.ReservationResponse](c, http.StatusOK, view)
}

// @Summary List my reservations
// @Description List the caller's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ReservationListItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *BookingHandler) ListReservations(c *gin.Context) {
	guestID, _, ok := actor(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.reservations.ListByGuest(c.Request.Context(), guestID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List reservations failed")
		return
	}
	renderPage[*resdto.ReservationListItemResponse](c, items, next)
}

// @Summary Get payment
// @Description Get an own payment and its status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *BookingHandler) GetPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.payments.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load payment")
		return
	}
	render[resdto.PaymentResponse](c, http.StatusOK, view)
}
