package paypal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeTransport records requests and replays canned responses in order.
type fakeTransport struct {
	mu        sync.Mutex
	token     string
	tokenErr  error
	tokens    int
	requests  []*Request
	responses []*Response
	sendErr   error
}

func (f *fakeTransport) AccessToken(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens++
	return f.token, f.tokenErr
}

func (f *fakeTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	if len(f.responses) == 0 {
		return nil, errors.New("no canned response")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeTransport) reply(status int, body string) *fakeTransport {
	f.responses = append(f.responses, &Response{StatusCode: status, Body: []byte(body)})
	return f
}

func (f *fakeTransport) last(t *testing.T) *Request {
	t.Helper()
	if len(f.requests) == 0 {
		t.Fatal("no request was sent")
	}
	return f.requests[len(f.requests)-1]
}

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func newTestClient(ft *fakeTransport, execCtx ExecutionContext) *Client {
	if ft.token == "" && ft.tokenErr == nil {
		ft.token = "test-token"
	}
	c := NewClient(ft, execCtx)
	c.now = func() time.Time { return fixedNow }
	c.newID = func() string { return "generated-id" }
	return c
}
