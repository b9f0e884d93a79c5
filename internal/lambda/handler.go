package lambda

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"github.com/kingrain94/account-api/internal/api/dto"
	"github.com/kingrain94/account-api/internal/domain"
	"github.com/kingrain94/account-api/pkg/logger"
)

type AccountService interface {
	Create(ctx context.Context, body map[string]*string) (domain.Result, error)
}

type Handler struct {
	service AccountService
	logger  *logger.Logger
}

func NewHandler(service AccountService, logger *logger.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle serves one create-account invocation. Any error it returns is an
// unexpected fault and is handed to the Lambda runtime unchanged.
func (h *Handler) Handle(ctx context.Context, event Event) (*Response, error) {
	log := h.logger.With(zap.String("request_id", requestID(ctx, event)))
	log.Info("Create account invoked",
		zap.String("http_method", event.Context.HTTPMethod),
		zap.String("stage", event.Context.Stage),
		zap.ByteString("body", event.BodyJSON))

	body, failure := dto.DecodeCreateAccountBody(event.BodyJSON)
	if failure != nil {
		log.Warn("Undecodable request body", zap.String("reason", failure.Message))
		return failureResponse(failure), nil
	}

	result, err := h.service.Create(ctx, body)
	if err != nil {
		log.Error("Create account failed", err)
		return nil, err
	}

	var resp *Response
	switch r := result.(type) {
	case *domain.Success:
		resp = &Response{
			StatusCode: r.Status(),
			Header:     map[string]string{"Location": r.Location},
			Body:       dto.FromAccount(r.Account),
		}
	case *domain.Failure:
		resp = failureResponse(r)
	default:
		return nil, fmt.Errorf("unexpected create result %T", result)
	}

	log.Info("Create account completed", zap.Int("status_code", resp.StatusCode))
	return resp, nil
}

func failureResponse(f *domain.Failure) *Response {
	return &Response{StatusCode: f.StatusCode, Message: f.Message}
}

func requestID(ctx context.Context, event Event) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return event.Context.RequestID
}
