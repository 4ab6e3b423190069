package handlers

import (
	request "mixto_gestao/internal/adapter/http/dto/request"
	"mixto_gestao/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

// Ask godoc
// @Summary Ask the business assistant
// @Description Provider failures return 200 with the fallback answer and fallback=true.
// @Tags assistant
// @Accept json
// @Produce json
// @Param question body request.AskRequest true "Question"
// @Success 200 {object} usecase.AssistantAnswer
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /assistant/ask [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var payload request.AskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	answer, err := h.usecase.Ask(c.Request.Context(), payload.Question)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}
