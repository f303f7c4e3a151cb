package model

type CreateTodoDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTodoDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
