package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/turmab/helpdesk/internal/api/metrics"
	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
)

// TicketHandler serves the /v1/tickets resource. All operations require an
// authenticated principal; no role restriction beyond that.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// Get handles GET /v1/tickets/:id.
//
// @Summary      Get a ticket by id
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ticketResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/tickets/{id} [get]
func (h *TicketHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicketResponse(detail))
}

// List handles GET /v1/tickets.
//
// @Summary      List tickets
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ticketResponse
// @Router       /v1/tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	details, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]ticketResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, toTicketResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/tickets.
//
// @Summary      Open a new ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ticketRequest  true  "Ticket details"
// @Success      201   {object}  ticketResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	var req ticketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	priority, _ := domain.PriorityFromCode(detail.PriorityCode)
	metrics.TicketsCreatedTotal.WithLabelValues(priority.String()).Inc()

	c.Response().Header().Set(echo.HeaderLocation, "/v1/tickets/"+strconv.Itoa(detail.ID))
	return c.JSON(http.StatusCreated, toTicketResponse(detail))
}

// Update handles PUT /v1/tickets/:id.
//
// @Summary      Update a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ticketRequest  true  "Ticket details"
// @Success      200   {object}  ticketResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/tickets/{id} [put]
func (h *TicketHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ticketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicketResponse(detail))
}
