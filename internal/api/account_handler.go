package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/account-api/internal/api/dto"
	"github.com/kingrain94/account-api/internal/domain"
	"github.com/kingrain94/account-api/pkg/logger"
)

type AccountService interface {
	Create(ctx context.Context, body map[string]*string) (domain.Result, error)
}

type AccountHandler struct {
	service AccountService
	logger  *logger.Logger
}

func NewAccountHandler(service AccountService, logger *logger.Logger) *AccountHandler {
	return &AccountHandler{service: service, logger: logger}
}

// CreateAccount godoc
// @Summary Create a new account
// @Description Create a tenant account under a generated accountId
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body dto.CreateAccountRequest true "Account object"
// @Success 201 {object} dto.AccountResponse
// @Header 201 {string} Location "/api/v1/accounts/{accountId}"
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 413 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.Error{
				StatusCode: http.StatusRequestEntityTooLarge,
				Message:    "Request body too large",
			})
			return
		}
		c.JSON(http.StatusBadRequest, dto.Error{StatusCode: http.StatusBadRequest, Message: err.Error()})
		return
	}

	body, failure := dto.DecodeCreateAccountBody(raw)
	if failure != nil {
		c.JSON(failure.StatusCode, dto.FromFailure(failure))
		return
	}

	result, err := h.service.Create(c.Request.Context(), body)
	if err != nil {
		h.logger.Error("Create account failed", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	switch r := result.(type) {
	case *domain.Success:
		c.Header("Location", r.Location)
		c.JSON(http.StatusCreated, dto.FromAccount(r.Account))
	case *domain.Failure:
		c.JSON(r.StatusCode, dto.FromFailure(r))
	default:
		h.logger.Warn("Unexpected create result")
		c.JSON(http.StatusInternalServerError, dto.InternalError())
	}
}
