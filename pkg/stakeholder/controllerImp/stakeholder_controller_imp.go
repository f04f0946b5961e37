package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rowtrack/pkg/apperr"
	"rowtrack/pkg/stakeholder/controller"
	"rowtrack/pkg/stakeholder/service"
)

type StakeholderCtrl struct{ s service.StakeholderService }

var _ controller.StakeholderController = (*StakeholderCtrl)(nil)

func New(s service.StakeholderService) *StakeholderCtrl { return &StakeholderCtrl{s: s} }

func (h *StakeholderCtrl) Register(g *echo.Group) {
	g.GET("/stakeholders/:id", h.Get)
	g.PATCH("/stakeholders/:id", h.Patch)
}

func (h *StakeholderCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.s.GetStakeholder(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StakeholderCtrl) Patch(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in service.StakeholderPatch
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.UpdateStakeholder(c.Request().Context(), uint(id), in)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, out)
}
