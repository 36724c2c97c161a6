// Package metrics exposes Prometheus counters for domain operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersRegistered counts successful registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finledger_users_registered_total",
		Help: "Total number of users registered",
	})

	// TransactionsCreated counts recorded transactions by kind.
	TransactionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finledger_transactions_created_total",
			Help: "Total number of transactions created",
		},
		[]string{"kind"},
	)

	// TransactionsDeleted counts removed transactions.
	TransactionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finledger_transactions_deleted_total",
		Help: "Total number of transactions deleted",
	})

	// DomainErrors counts rejected operations by outcome.
	DomainErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finledger_domain_errors_total",
			Help: "Total number of domain-level rejections",
		},
		[]string{"operation"},
	)
)
