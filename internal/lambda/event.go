package lambda

import (
	"encoding/json"

	"github.com/kingrain94/account-api/internal/api/dto"
)

// Event is the API Gateway mapping-template envelope: the client body under
// "body-json" next to request params and caller context.
type Event struct {
	BodyJSON      json.RawMessage   `json:"body-json"`
	Params        Params            `json:"params"`
	StageVariable map[string]string `json:"stage-variables,omitempty"`
	Context       RequestContext    `json:"context"`
}

type Params struct {
	Path        map[string]string `json:"path,omitempty"`
	QueryString map[string]string `json:"querystring,omitempty"`
	Header      map[string]string `json:"header,omitempty"`
}

type RequestContext struct {
	AccountID  string `json:"account-id"`
	APIID      string `json:"api-id"`
	HTTPMethod string `json:"http-method"`
	RequestID  string `json:"request-id"`
	Stage      string `json:"stage"`
	SourceIP   string `json:"source-ip"`
	UserAgent  string `json:"user-agent"`
}

// Response is what the integration response templates map back to HTTP.
// Failures carry statusCode and message only.
type Response struct {
	StatusCode int                  `json:"statusCode"`
	Header     map[string]string    `json:"header,omitempty"`
	Body       *dto.AccountResponse `json:"body,omitempty"`
	Message    string               `json:"message,omitempty"`
}
