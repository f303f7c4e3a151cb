package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/usecase/todo"
)

type Config struct {
	ContextPath    string
	SwaggerEnabled bool
}

// New builds the echo instance serving the todo page, the todo API and, when enabled, the swagger UI.
func New(config Config, todoUseCase todo.UseCase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	middleware.SetupErrorHandler(e)

	api := e.Group(config.ContextPath)

	staticController := controller.NewStaticController(api)
	todoController := controller.NewTodoController(api, todoUseCase)

	staticController.InitStaticRoutes()
	todoController.InitTodoRoutes()

	if config.SwaggerEnabled {
		api.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}
