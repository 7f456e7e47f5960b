package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/turmab/helpdesk/internal/core/ports"
)

// PersonHandler serves the client and technician resources. The two differ
// only in the service they delegate to and the base path used in the
// Location header.
type PersonHandler struct {
	service  ports.PersonService
	basePath string
}

// NewClientHandler returns the handler for /v1/clients.
func NewClientHandler(service ports.PersonService) *PersonHandler {
	return &PersonHandler{service: service, basePath: "/v1/clients"}
}

// NewTechnicianHandler returns the handler for /v1/technicians.
func NewTechnicianHandler(service ports.PersonService) *PersonHandler {
	return &PersonHandler{service: service, basePath: "/v1/technicians"}
}

// Get handles GET {basePath}/:id.
//
// @Summary      Get a client or technician by id
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  personResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/clients/{id} [get]
func (h *PersonHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	person, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPersonResponse(person))
}

// List handles GET {basePath}.
//
// @Summary      List clients or technicians
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  personResponse
// @Router       /v1/clients [get]
func (h *PersonHandler) List(c echo.Context) error {
	people, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]personResponse, 0, len(people))
	for _, p := range people {
		resp = append(resp, toPersonResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST {basePath}. ADMIN only.
//
// @Summary      Create a client or technician
// @Tags         people
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPersonRequest  true  "Person details"
// @Success      201   {object}  personResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/clients [post]
func (h *PersonHandler) Create(c echo.Context) error {
	var req createPersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	person, err := h.service.Create(c.Request().Context(), ports.PersonInput{
		Name:      req.Name,
		CPF:       req.CPF,
		Email:     req.Email,
		Password:  req.Password,
		RoleCodes: req.Roles,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, h.basePath+"/"+strconv.Itoa(person.ID))
	return c.JSON(http.StatusCreated, toPersonResponse(person))
}

// Update handles PUT {basePath}/:id. ADMIN only.
//
// @Summary      Update a client or technician
// @Tags         people
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePersonRequest  true  "Person details"
// @Success      200   {object}  personResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/clients/{id} [put]
func (h *PersonHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	person, err := h.service.Update(c.Request().Context(), id, ports.PersonInput{
		Name:      req.Name,
		CPF:       req.CPF,
		Email:     req.Email,
		Password:  req.Password,
		RoleCodes: req.Roles,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPersonResponse(person))
}

// Delete handles DELETE {basePath}/:id. ADMIN only. Persons referenced by
// tickets cannot be deleted.
//
// @Summary      Delete a client or technician
// @Tags         people
// @Security     BearerAuth
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/clients/{id} [delete]
func (h *PersonHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
