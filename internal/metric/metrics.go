package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Orders successfully placed",
	})

	PlacementFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "orders",
		Name:      "placement_failures_total",
		Help:      "Order placements rolled back, by reason",
	}, []string{"reason"}) // out_of_stock, insufficient_balance, invalid_coupon, other

	AcceptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "dispatch",
		Name:      "accepts_total",
		Help:      "Delivery accept attempts, by outcome",
	}, []string{"outcome"}) // won / conflict

	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "lifecycle",
		Name:      "transitions_total",
		Help:      "Delivery state transitions applied",
	}, []string{"from", "to"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "notifications",
		Name:      "published_total",
		Help:      "Notification pushes, by result",
	}, []string{"result"}) // delivered / failed
)
