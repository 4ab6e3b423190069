package handlers

import (
	"errors"
	"mixto_gestao/internal/domain/draft"
	"mixto_gestao/internal/usecase"
	"mixto_gestao/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidCatalogID),
		errors.Is(err, usecase.ErrInvalidCatalogName),
		errors.Is(err, usecase.ErrInvalidCatalogPrice),
		errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidBudgetStatus),
		errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidTaskStage),
		errors.Is(err, usecase.ErrInvalidTaskStatus),
		errors.Is(err, usecase.ErrInvalidQuestion),
		errors.Is(err, draft.ErrLineItemIndex),
		errors.Is(err, draft.ErrUnknownLineItemKind),
		errors.Is(err, draft.ErrInvalidLineItemValue):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskRemovalNotConfirmed):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Repeat the request with confirm=true to remove the task", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrAssistantBusy):
		return pkg.NewDomainErrorSimple("ASSISTANT_BUSY", "The assistant is still answering the previous question", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget must be approved before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetHasNoValue):
		return pkg.NewDomainErrorSimple("BUDGET_WITHOUT_VALUE", "Budget total must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider request failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrReportFailed):
		return pkg.NewDomainError("REPORT_GENERATION_FAILED", "Could not generate the report", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Changes could not be saved", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

// budgetIDParam rebuilds the NNN/YYYY id from the :seq and :year segments.
func budgetIDParam(c *gin.Context) string {
	return c.Param("seq") + "/" + c.Param("year")
}
