package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/account-api/internal/domain"
	"github.com/kingrain94/account-api/internal/repository"
	"github.com/kingrain94/account-api/internal/service"
	"github.com/kingrain94/account-api/pkg/logger"
)

const (
	accountName = "test-account"
	website     = "www.example.com"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type HandlerTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	handler  *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockRepo = new(MockAccountRepository)
	svc := service.NewAccountService(s.mockRepo, logger.NewNop())
	s.handler = NewHandler(svc, logger.NewNop())
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func apiGatewayEvent(body string) Event {
	raw := `{
		"body-json": ` + body + `,
		"params": {"querystring": {}, "header": {"Accept": "application/json"}},
		"stage-variables": {"deploymentId": "95777ed2-5582-44ee-b3d3-269dc74e865b"},
		"context": {"http-method": "POST", "request-id": "1234", "stage": "test-invoke-stage"}
	}`
	var event Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		panic(err)
	}
	return event
}

func (s *HandlerTestSuite) TestHandle_Created() {
	s.mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	resp, err := s.handler.Handle(context.Background(),
		apiGatewayEvent(`{"name": "`+accountName+`", "website": "`+website+`"}`))

	s.NoError(err)
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Require().NotNil(resp.Body)
	s.Equal(accountName, resp.Body.Name)
	s.Equal(website, resp.Body.Website)
	s.Nil(resp.Body.Comment)
	s.NotEmpty(resp.Body.AccountID)
	s.True(strings.HasSuffix(resp.Header["Location"], "/accounts/"+resp.Body.AccountID))
	s.Empty(resp.Message)
}

func (s *HandlerTestSuite) TestHandle_ResponseShape() {
	s.mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	resp, err := s.handler.Handle(context.Background(),
		apiGatewayEvent(`{"name": "a", "website": "www.example.com", "comment": "c"}`))
	s.Require().NoError(err)

	encoded, err := json.Marshal(resp)
	s.Require().NoError(err)

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(encoded, &decoded))
	s.EqualValues(201, decoded["statusCode"])
	s.Contains(decoded, "header")
	body := decoded["body"].(map[string]any)
	s.Equal("c", body["comment"])
	s.Equal(body["createdAt"], body["updatedAt"])
	s.NotContains(decoded, "message")
}

func (s *HandlerTestSuite) TestHandle_ValidationFailure() {
	resp, err := s.handler.Handle(context.Background(), apiGatewayEvent(`{}`))

	s.NoError(err)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("name may not be missing; website may not be missing", resp.Message)
	s.Nil(resp.Body)
	s.Nil(resp.Header)
	s.mockRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestHandle_MissingBody() {
	resp, err := s.handler.Handle(context.Background(), Event{})

	s.NoError(err)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("request body must be a JSON object", resp.Message)
}

func (s *HandlerTestSuite) TestHandle_Conflict() {
	s.mockRepo.On("Insert", mock.Anything, mock.Anything).Return(repository.ErrConditionFailed)

	resp, err := s.handler.Handle(context.Background(),
		apiGatewayEvent(`{"name": "`+accountName+`", "website": "`+website+`"}`))

	s.NoError(err)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("Conflict with item", resp.Message)
}

func (s *HandlerTestSuite) TestHandle_FaultIsReturnedUnchanged() {
	storeErr := errors.New("AccessDeniedException")
	s.mockRepo.On("Insert", mock.Anything, mock.Anything).Return(storeErr)

	resp, err := s.handler.Handle(context.Background(),
		apiGatewayEvent(`{"name": "`+accountName+`", "website": "`+website+`"}`))

	s.Nil(resp)
	s.Same(storeErr, err)
}
