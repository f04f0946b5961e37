package controller

import "github.com/labstack/echo/v4"

type StakeholderController interface {
	Get(c echo.Context) error
	Patch(c echo.Context) error
}
