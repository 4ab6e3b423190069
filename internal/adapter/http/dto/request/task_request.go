package request

type AddTaskRequest struct {
	Stage       string `json:"stage" binding:"required"`
	Description string `json:"description"`
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}
