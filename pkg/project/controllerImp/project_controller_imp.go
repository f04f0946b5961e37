package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rowtrack/pkg/apperr"
	"rowtrack/pkg/project/controller"
	"rowtrack/pkg/project/service"
	"rowtrack/pkg/project/types"
)

type ProjectCtrl struct{ s service.ProjectService }

var _ controller.ProjectController = (*ProjectCtrl)(nil)

func New(s service.ProjectService) *ProjectCtrl { return &ProjectCtrl{s: s} }

func (h *ProjectCtrl) Register(g *echo.Group) {
	g.POST("/projects", h.Create)
	g.GET("/projects/:id", h.Get)
}

type createRequest struct {
	Project *types.ProjectInput `json:"project"`
}

func (h *ProjectCtrl) Create(c echo.Context) error {
	var in createRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	msg, err := h.s.CreateProject(c.Request().Context(), in.Project)
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	status := http.StatusCreated
	if in.Project == nil {
		status = http.StatusOK
	}
	return c.JSON(status, echo.Map{"message": msg})
}

func (h *ProjectCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.s.GetProject(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(apperr.Status(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, out)
}
