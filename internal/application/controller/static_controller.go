package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/web"
)

type StaticController struct {
	api *echo.Group
}

func NewStaticController(api *echo.Group) *StaticController {
	return &StaticController{api: api}
}

// InitStaticRoutes serves the todo page at the root path
func (controller *StaticController) InitStaticRoutes() {
	controller.api.GET("/", controller.Index)
}

func (controller *StaticController) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, web.IndexHTML)
}
