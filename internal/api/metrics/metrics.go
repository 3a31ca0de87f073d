// Package metrics defines and registers all custom Prometheus metrics for
// the ConnectLive API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "connectlive"

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// FriendRequestsTotal counts friend-request lifecycle actions.
// Label:
//   - action: "sent", "accepted", or "declined"
var FriendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friend_requests_total",
		Help:      "Total number of friend-request actions, by action.",
	},
	[]string{"action"},
)

// EmailsSentTotal counts outbound transactional mail.
// Labels:
//   - kind: "verification", "password_reset", or "reset_success"
//   - result: "success" or "failure"
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of transactional emails dispatched, by kind and result.",
	},
	[]string{"kind", "result"},
)

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)
