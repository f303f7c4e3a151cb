package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.UpdateByID)
	controller.api.DELETE("/todos/:id", controller.DeleteByID)
}

// FindAll godoc
// @Summary Get all todos
// @Description Retrieve every stored todo
// @Tags todos
// @Produce json
// @Success 200 {array} entity.Todo "List of todos"
// @Failure 500 {string} string "Error retrieving todos"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	todos, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return respondError(c, err, "todo.error.find-all")
	}
	return c.JSON(http.StatusOK, todos)
}

// FindByID godoc
// @Summary Get todo by id
// @Description Find a todo by its id
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} entity.Todo "Todo"
// @Failure 404 {string} string "Todo item not found."
// @Failure 500 {string} string "Error retrieving the todo item."
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	found, err := controller.useCase.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "todo.error.find")
	}
	return c.JSON(http.StatusOK, found)
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo; title and description are required
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 500 {string} string "Error creating a todo item."
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return respondError(c, err, "todo.error.create")
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return respondError(c, err, "todo.error.create")
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateByID godoc
// @Summary Update todo by id
// @Description Replace the title and description of a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Todo update data"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 404 {string} string "Todo item not found."
// @Failure 500 {string} string "Error updating the todo item."
// @Router /todos/{id} [put]
func (controller *TodoController) UpdateByID(c echo.Context) error {
	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return respondError(c, err, "todo.error.update")
	}

	updated, err := controller.useCase.UpdateByID(c.Request().Context(), c.Param("id"), dto)
	if err != nil {
		return respondError(c, err, "todo.error.update")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteByID godoc
// @Summary Delete todo by id
// @Description Delete a todo and return its last known content
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} entity.Todo "Deleted todo"
// @Failure 404 {string} string "Todo item not found."
// @Failure 500 {string} string "Error deleting the todo item."
// @Router /todos/{id} [delete]
func (controller *TodoController) DeleteByID(c echo.Context) error {
	deleted, err := controller.useCase.DeleteByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "todo.error.delete")
	}
	return c.JSON(http.StatusOK, deleted)
}

// respondError maps a use case error to a plain text response.
// Unknown and malformed ids are both 404; everything else is a 500 with the operation's message.
func respondError(c echo.Context, err error, failureKey string) error {
	if errors.Is(err, model.ErrTodoNotFound) || errors.Is(err, model.ErrInvalidTodoID) {
		return c.String(http.StatusNotFound, msg.GetMessage("todo.error.not-found"))
	}

	message := msg.GetMessage(failureKey)
	log.Error(message,
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	)
	return c.String(http.StatusInternalServerError, message)
}
