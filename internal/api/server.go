package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/account-api/internal/middleware"
	"github.com/kingrain94/account-api/pkg/logger"
)

const maxBodySize = 64 * 1024

type Server struct {
	account    *AccountHandler
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	limit      int
}

// NewServer wires the handlers. rateLimit may be nil, in which case no
// limit is applied.
func NewServer(
	accountService AccountService,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	globalLimit int,
	logger *logger.Logger,
) *Server {
	return &Server{
		account:    NewAccountHandler(accountService, logger),
		rateLimit:  rateLimit,
		validation: validation,
		limit:      globalLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.RequestLogger())
	api.Use(s.validation.ValidateRequestSize(maxBodySize))
	api.Use(s.validation.ValidateContentType("application/json"))

	if s.rateLimit != nil && s.limit > 0 {
		api.Use(s.rateLimit.GlobalRateLimit(s.limit))
	}

	accounts := api.Group("/accounts")
	{
		accounts.POST("", s.account.CreateAccount)
	}
}
