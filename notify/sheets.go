// Package notify talks to the collaborators outside the service: the spreadsheet web app that
// collects contact submissions and the mail server used for admin replies.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"

	"medivance-backend/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrSheetsNotConfigured = errors.New("spreadsheet web app url is not configured")
	ErrSheetsRejected      = errors.New("spreadsheet append failed")
)

const sheetsTimeout = 15 * time.Second

// sheetsRequest is the flat JSON object the web app expects.
type sheetsRequest struct {
	models.ContactPayload
	Token string `json:"token"`
}

type sheetsReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SheetsClient appends contact submissions as spreadsheet rows through an Apps Script web app.
type SheetsClient struct {
	url     string
	token   string
	timeout time.Duration
}

func NewSheetsClient(url, token string) *SheetsClient {
	return &SheetsClient{url: url, token: token, timeout: sheetsTimeout}
}

// Enabled reports whether a web app url is configured.
func (c *SheetsClient) Enabled() bool {
	return c != nil && c.url != ""
}

// Append posts payload with the shared token. A non-2xx status fails. A JSON reply whose
// status is set and not "success" fails with its message. A 2xx reply without JSON succeeds.
func (c *SheetsClient) Append(ctx context.Context, payload models.ContactPayload) error {
	if !c.Enabled() {
		return ErrSheetsNotConfigured
	}

	var body []byte
	var code int
	err := gout.POST(c.url).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(sheetsRequest{ContactPayload: payload, Token: c.token}).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		return fmt.Errorf("sheets request failed: %w", err)
	}

	ok := code >= http.StatusOK && code < http.StatusMultipleChoices
	var reply sheetsReply
	if len(body) == 0 || json.Unmarshal(body, &reply) != nil {
		if !ok {
			return fmt.Errorf("%w: %d %s", ErrSheetsRejected, code, http.StatusText(code))
		}
		return nil
	}

	if !ok || (reply.Status != "" && reply.Status != "success") {
		if reply.Message != "" {
			return fmt.Errorf("%w: %s", ErrSheetsRejected, reply.Message)
		}
		return fmt.Errorf("%w (status %d)", ErrSheetsRejected, code)
	}
	return nil
}
