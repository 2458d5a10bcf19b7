package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
)

// DefaultTimeout is the per-request abort timeout at the cache-refresh layer.
const DefaultTimeout = 8 * time.Second

// errTimedOut marks a request aborted by the client-side timeout so cache
// error slots can report a distinguished message.
var errTimedOut = errors.New("request timed out")

// Client performs the REST calls behind the entity caches. A token, when set
// by the admin gate, is attached as a Bearer header for the guarded order
// routes.
type Client struct {
	BaseURL string
	Timeout time.Duration

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, Timeout: DefaultTimeout}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

func (c *Client) flow(method, path string) *dataflow.DataFlow {
	url := c.BaseURL + path
	var df *dataflow.DataFlow
	switch method {
	case http.MethodGet:
		df = gout.GET(url)
	case http.MethodPost:
		df = gout.POST(url)
	case http.MethodPut:
		df = gout.PUT(url)
	case http.MethodPatch:
		df = gout.PATCH(url)
	case http.MethodDelete:
		df = gout.DELETE(url)
	default:
		df = gout.GET(url)
	}
	df = df.SetTimeout(c.timeout())
	c.mu.RLock()
	if c.token != "" {
		df = df.SetHeader(gout.H{"Authorization": "Bearer " + c.token})
	}
	c.mu.RUnlock()
	return df
}

// do issues the request and decodes a 2xx body into out (when non-nil).
// Non-2xx responses become an error carrying the server's message field when
// one is present; timeouts surface as errTimedOut.
func (c *Client) do(method, path string, payload, out any) (int, error) {
	df := c.flow(method, path)
	if payload != nil {
		df = df.SetJSON(payload)
	}

	var (
		code int
		body []byte
	)
	if err := df.BindBody(&body).Code(&code).Do(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, errTimedOut
		}
		return 0, err
	}

	if code < 200 || code >= 300 {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.Unmarshal(body, &payload)
		msg := payload.Message
		if msg == "" {
			msg = payload.Error
		}
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", code)
		}
		return code, errors.New(msg)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return code, err
		}
	}
	return code, nil
}

func (c *Client) Get(path string, out any) error {
	_, err := c.do(http.MethodGet, path, nil, out)
	return err
}

func (c *Client) Post(path string, payload, out any) error {
	_, err := c.do(http.MethodPost, path, payload, out)
	return err
}

func (c *Client) Put(path string, payload, out any) error {
	_, err := c.do(http.MethodPut, path, payload, out)
	return err
}

func (c *Client) Patch(path string, payload, out any) error {
	_, err := c.do(http.MethodPatch, path, payload, out)
	return err
}

// Delete treats both 200 and 204 as success.
func (c *Client) Delete(path string) error {
	_, err := c.do(http.MethodDelete, path, nil, nil)
	return err
}
