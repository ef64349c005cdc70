package observability

// Metric name prefixes
const (
	MetricPrefix = "bethouse"
)

// Metric names
const (
	// HTTP metrics
	HTTPRequestsTotal   = MetricPrefix + ".http.requests_total"
	HTTPRequestDuration = MetricPrefix + ".http.request_duration"

	// Betting metrics
	BetsPlacedTotal = MetricPrefix + ".bets.placed_total"

	// NATS metrics
	NATSMessagesReceivedTotal  = MetricPrefix + ".nats.messages_received_total"
	NATSMessagesPublishedTotal = MetricPrefix + ".nats.messages_published_total"

	// Balance metrics
	BalanceTransactionsTotal = MetricPrefix + ".balance.transactions_total"
)

// Label keys
const (
	// Common labels
	LabelType      = "type"
	LabelEventType = "event_type"

	// HTTP labels
	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
)
