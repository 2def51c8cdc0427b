package gateway

import (
	"time"

	"github.com/piresc/salesboard/services/transactions"
	gateway_http "github.com/piresc/salesboard/services/transactions/gateway/http"
	gateway_nsq "github.com/piresc/salesboard/services/transactions/gateway/nsq"
)

// TransactionGW handles transactions gateway operations
type TransactionGW struct {
	httpGateway *gateway_http.SeedSourceGateway
	nsqGateway  *gateway_nsq.NSQGateway
}

// NewTransactionGW creates a gateway reading the seed dataset from seedURL
// and announcing reseeds on topic. A nil publisher disables announcements.
func NewTransactionGW(seedURL string, fetchTimeout time.Duration, publisher gateway_nsq.Publisher, topic string) transactions.TransactionGW {
	return &TransactionGW{
		httpGateway: gateway_http.NewSeedSourceGateway(seedURL, fetchTimeout),
		nsqGateway:  gateway_nsq.NewNSQGateway(publisher, topic),
	}
}
