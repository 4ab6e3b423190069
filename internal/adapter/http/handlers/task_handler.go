package handlers

import (
	request "mixto_gestao/internal/adapter/http/dto/request"
	response "mixto_gestao/internal/adapter/http/dto/response"
	"mixto_gestao/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

// AddTask godoc
// @Summary Add a task to a budget
// @Description A blank description changes nothing and returns 200 without a task.
// @Tags tasks
// @Accept json
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Param task body request.AddTaskRequest true "Task"
// @Success 201 {object} response.TaskMutationResponse
// @Success 200 {object} response.TaskMutationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /budgets/{seq}/{year}/tasks [post]
func (h *TaskHandler) AddTask(c *gin.Context) {
	var payload request.AddTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	budget, task, err := h.usecase.AddTask(c.Request.Context(), budgetIDParam(c), payload.Stage, payload.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	out := response.TaskMutationResponse{Budget: response.FromBudget(budget)}
	if task == nil {
		c.JSON(http.StatusOK, out)
		return
	}
	tr := response.FromTask(*task)
	out.Task = &tr
	c.JSON(http.StatusCreated, out)
}

// SetTaskStatus godoc
// @Summary Change a task's status
// @Tags tasks
// @Accept json
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Param task_id path string true "Task ID"
// @Param status body request.StatusRequest true "pendente, concluido or atrasado"
// @Success 200 {object} response.TaskMutationResponse
// @Router /budgets/{seq}/{year}/tasks/{task_id}/status [patch]
func (h *TaskHandler) SetTaskStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	budget, err := h.usecase.SetTaskStatus(c.Request.Context(), budgetIDParam(c), c.Param("task_id"), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TaskMutationResponse{Budget: response.FromBudget(budget)})
}

// RemoveTask godoc
// @Summary Remove a task
// @Description Removal must be confirmed with confirm=true; otherwise 428 is returned and nothing changes.
// @Tags tasks
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Param task_id path string true "Task ID"
// @Param confirm query bool false "Confirm removal"
// @Success 200 {object} response.TaskMutationResponse
// @Failure 428 {object} pkg.HTTPError
// @Router /budgets/{seq}/{year}/tasks/{task_id} [delete]
func (h *TaskHandler) RemoveTask(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	budget, err := h.usecase.RemoveTask(c.Request.Context(), budgetIDParam(c), c.Param("task_id"), confirmed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TaskMutationResponse{Budget: response.FromBudget(budget)})
}
