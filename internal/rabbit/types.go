package rabbit

// Rate is the nested rate container the management API attaches to
// every counter it tracks.
type Rate struct {
	Rate float64 `json:"rate"`
}

// QueueTotals holds broker-wide message counts from /api/overview.
type QueueTotals struct {
	Messages float64 `json:"messages"`
	Ready    float64 `json:"messages_ready"`
	Unacked  float64 `json:"messages_unacknowledged"`
}

// MessageStats holds broker-wide disk I/O counters from /api/overview.
type MessageStats struct {
	DiskReads        float64 `json:"disk_reads"`
	DiskReadDetails  Rate    `json:"disk_reads_details"`
	DiskWrites       float64 `json:"disk_writes"`
	DiskWriteDetails Rate    `json:"disk_writes_details"`
}

// Overview is the broker-wide snapshot charted by the overview pane.
type Overview struct {
	QueueTotals  QueueTotals  `json:"queue_totals"`
	MessageStats MessageStats `json:"message_stats"`
}

// ExchangeInfo describes one exchange as returned by /api/exchanges.
type ExchangeInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Vhost      string `json:"vhost"`
	Durable    bool   `json:"durable"`
	AutoDelete bool   `json:"auto_delete"`
	Internal   bool   `json:"internal"`
}

// DisplayName returns the exchange name, substituting a readable label
// for the nameless default exchange.
func (e ExchangeInfo) DisplayName() string {
	if e.Name == "" {
		return "(AMQP default)"
	}
	return e.Name
}

// BindingInfo describes one binding sourced at an exchange.
type BindingInfo struct {
	Source          string `json:"source"`
	Vhost           string `json:"vhost"`
	Destination     string `json:"destination"`
	DestinationType string `json:"destination_type"`
	RoutingKey      string `json:"routing_key"`
	PropertiesKey   string `json:"properties_key"`
}

// QueueStats holds the per-queue rate counters nested under message_stats.
type QueueStats struct {
	PublishDetails Rate `json:"publish_details"`
	DeliverDetails Rate `json:"deliver_get_details"`
	AckDetails     Rate `json:"ack_details"`
}

// QueueInfo describes one queue as returned by /api/queues.
type QueueInfo struct {
	Name    string     `json:"name"`
	Vhost   string     `json:"vhost"`
	Type    string     `json:"type"`
	State   string     `json:"state"`
	Ready   int64      `json:"messages_ready"`
	Unacked int64      `json:"messages_unacknowledged"`
	Total   int64      `json:"messages"`
	Stats   QueueStats `json:"message_stats"`
}

// Message is a single message popped off a queue.
type Message struct {
	Payload     string `json:"payload"`
	Exchange    string `json:"exchange"`
	RoutingKey  string `json:"routing_key"`
	Redelivered bool   `json:"redelivered"`
}
