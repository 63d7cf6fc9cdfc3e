package rabbit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "guest", "guest")
}

func TestOverviewSendsBasicAuth(t *testing.T) {
	var gotUser, gotPass string
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		assert.Equal(t, "/api/overview", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"queue_totals": {"messages": 10, "messages_ready": 7, "messages_unacknowledged": 3},
			"message_stats": {"disk_reads_details": {"rate": 1.5}, "disk_writes_details": {"rate": 2.5}}
		}`))
	})

	ov, err := c.Overview()
	require.NoError(t, err)
	assert.Equal(t, "guest", gotUser)
	assert.Equal(t, "guest", gotPass)
	assert.Equal(t, 10.0, ov.QueueTotals.Messages)
	assert.Equal(t, 7.0, ov.QueueTotals.Ready)
	assert.Equal(t, 3.0, ov.QueueTotals.Unacked)
	assert.Equal(t, 1.5, ov.MessageStats.DiskReadDetails.Rate)
	assert.Equal(t, 2.5, ov.MessageStats.DiskWriteDetails.Rate)
}

func TestExchangeBindingsEscapesDefaultVhost(t *testing.T) {
	var gotPath string
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[{"source": "amq.topic", "destination": "logs", "routing_key": "app.#"}]`))
	})

	bindings, err := c.ExchangeBindings(ExchangeInfo{Name: "amq.topic", Vhost: "/"})
	require.NoError(t, err)
	assert.Equal(t, "/api/exchanges/%2F/amq.topic/bindings/source", gotPath)
	require.Len(t, bindings, 1)
	assert.Equal(t, "logs", bindings[0].Destination)
	assert.Equal(t, "app.#", bindings[0].RoutingKey)
}

func TestListQueuesDecodesRates(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/queues", r.URL.Path)
		_, _ = w.Write([]byte(`[{
			"name": "work", "vhost": "/", "type": "classic", "state": "running",
			"messages_ready": 5, "messages_unacknowledged": 2, "messages": 7,
			"message_stats": {
				"publish_details": {"rate": 0.4},
				"deliver_get_details": {"rate": 0.2},
				"ack_details": {"rate": 0.1}
			}
		}]`))
	})

	queues, err := c.ListQueues()
	require.NoError(t, err)
	require.Len(t, queues, 1)
	q := queues[0]
	assert.Equal(t, "work", q.Name)
	assert.Equal(t, int64(7), q.Total)
	assert.Equal(t, 0.4, q.Stats.PublishDetails.Rate)
	assert.Equal(t, 0.2, q.Stats.DeliverDetails.Rate)
	assert.Equal(t, 0.1, q.Stats.AckDetails.Rate)
}

func TestPublishRoutesThroughDefaultExchange(t *testing.T) {
	var gotPath string
	var gotBody publishRequest
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"routed": true}`))
	})

	err := c.Publish("work", "/", `{"job": 1}`)
	require.NoError(t, err)
	assert.Equal(t, "/api/exchanges/%2F/amq.default/publish", gotPath)
	assert.Equal(t, "work", gotBody.RoutingKey)
	assert.Equal(t, `{"job": 1}`, gotBody.Payload)
	assert.Equal(t, "string", gotBody.PayloadEncoding)
}

func TestPublishUnroutedIsAnError(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routed": false}`))
	})

	err := c.Publish("missing", "/", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not routed")
}

func TestPopRequeuesAndReturnsMessage(t *testing.T) {
	var gotBody getRequest
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`[{"payload": "hello", "exchange": "", "routing_key": "work", "redelivered": true}]`))
	})

	msg, err := c.Pop("work", "/")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "hello", msg.Payload)
	assert.True(t, msg.Redelivered)
	assert.Equal(t, 1, gotBody.Count)
	assert.Equal(t, "ack_requeue_true", gotBody.AckMode)
}

func TestPopEmptyQueueReturnsNil(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	msg, err := c.Pop("work", "/")
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestPurgeDeletesContents(t *testing.T) {
	var gotMethod, gotPath string
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Purge("work", "staging"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/queues/staging/work/contents", gotPath)
}

func TestBadCredentialsSurfaceAsError(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := c.Healthcheck()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "(AMQP default)", ExchangeInfo{}.DisplayName())
	assert.Equal(t, "amq.topic", ExchangeInfo{Name: "amq.topic"}.DisplayName())
}
