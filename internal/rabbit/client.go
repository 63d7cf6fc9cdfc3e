// Package rabbit wraps the RabbitMQ HTTP management API for the dashboard.
package rabbit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ManagementAPI is the surface the dashboard consumes. Panes depend on
// this interface so tests can substitute a fake broker.
type ManagementAPI interface {
	Overview() (Overview, error)
	ListExchanges() ([]ExchangeInfo, error)
	ExchangeBindings(exch ExchangeInfo) ([]BindingInfo, error)
	ListQueues() ([]QueueInfo, error)
	Publish(queue, vhost, payload string) error
	Pop(queue, vhost string) (*Message, error)
	Purge(queue, vhost string) error
	Healthcheck() error
}

// Client talks to one broker's management plugin with basic auth.
type Client struct {
	addr string
	user string
	pass string
	http *http.Client
}

// NewClient creates a client for the management API at addr
// (e.g. http://localhost:15672).
func NewClient(addr, user, pass string) *Client {
	return &Client{
		addr: strings.TrimRight(addr, "/"),
		user: user,
		pass: pass,
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// Overview returns the broker-wide totals and disk rates.
func (c *Client) Overview() (Overview, error) {
	var ov Overview
	if err := c.get("/api/overview", &ov); err != nil {
		return Overview{}, err
	}
	return ov, nil
}

// ListExchanges returns every exchange visible to the configured user.
func (c *Client) ListExchanges() ([]ExchangeInfo, error) {
	var exchanges []ExchangeInfo
	if err := c.get("/api/exchanges", &exchanges); err != nil {
		return nil, err
	}
	return exchanges, nil
}

// ExchangeBindings returns the bindings sourced at the given exchange.
func (c *Client) ExchangeBindings(exch ExchangeInfo) ([]BindingInfo, error) {
	path := fmt.Sprintf("/api/exchanges/%s/%s/bindings/source",
		vhostSegment(exch.Vhost), url.PathEscape(exch.Name))
	var bindings []BindingInfo
	if err := c.get(path, &bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

// ListQueues returns every queue visible to the configured user.
func (c *Client) ListQueues() ([]QueueInfo, error) {
	var queues []QueueInfo
	if err := c.get("/api/queues", &queues); err != nil {
		return nil, err
	}
	return queues, nil
}

// publishRequest is the body for publishing through the default exchange.
type publishRequest struct {
	Properties      map[string]any `json:"properties"`
	RoutingKey      string         `json:"routing_key"`
	Payload         string         `json:"payload"`
	PayloadEncoding string         `json:"payload_encoding"`
}

type publishResponse struct {
	Routed bool `json:"routed"`
}

// Publish sends payload to the queue through the default exchange, which
// routes by queue name.
func (c *Client) Publish(queue, vhost, payload string) error {
	path := fmt.Sprintf("/api/exchanges/%s/amq.default/publish", vhostSegment(vhost))
	req := publishRequest{
		Properties:      map[string]any{},
		RoutingKey:      queue,
		Payload:         payload,
		PayloadEncoding: "string",
	}
	var resp publishResponse
	if err := c.post(path, req, &resp); err != nil {
		return err
	}
	if !resp.Routed {
		return fmt.Errorf("publish to %s: message was not routed", queue)
	}
	return nil
}

// getRequest is the body for /api/queues/{vhost}/{queue}/get. The requeue
// ackmode returns the message but leaves it on the queue.
type getRequest struct {
	Count    int    `json:"count"`
	AckMode  string `json:"ackmode"`
	Encoding string `json:"encoding"`
}

// Pop fetches one message from the queue, requeueing it on the broker.
// Returns nil when the queue is empty.
func (c *Client) Pop(queue, vhost string) (*Message, error) {
	path := fmt.Sprintf("/api/queues/%s/%s/get", vhostSegment(vhost), url.PathEscape(queue))
	req := getRequest{Count: 1, AckMode: "ack_requeue_true", Encoding: "auto"}
	var msgs []Message
	if err := c.post(path, req, &msgs); err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, nil
	}
	return &msgs[0], nil
}

// Purge drops every message currently on the queue.
func (c *Client) Purge(queue, vhost string) error {
	path := fmt.Sprintf("/api/queues/%s/%s/contents", vhostSegment(vhost), url.PathEscape(queue))
	return c.do(http.MethodDelete, path, nil, nil)
}

// Healthcheck verifies the broker is reachable and the credentials work.
func (c *Client) Healthcheck() error {
	var ov Overview
	if err := c.get("/api/overview", &ov); err != nil {
		return fmt.Errorf("healthcheck: %w", err)
	}
	return nil
}

func (c *Client) get(path string, out any) error {
	return c.do(http.MethodGet, path, nil, out)
}

func (c *Client) post(path string, body, out any) error {
	return c.do(http.MethodPost, path, body, out)
}

// do performs one authenticated request and decodes the response into out
// when out is non-nil.
func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.addr+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.SetBasicAuth(c.user, c.pass)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// vhostSegment path-escapes a vhost name; the default vhost "/" becomes %2F.
func vhostSegment(vhost string) string {
	return url.PathEscape(vhost)
}
