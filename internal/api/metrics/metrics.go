// Package metrics defines and registers all custom Prometheus metrics for the
// job portal API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics use promauto, so importing this package is enough to register
// them with the default Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobportal"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts completed signups.
// Label:
//   - role: "jobseeker" or "employer"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "not_found", or "wrong_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EmailDomainChecksTotal counts email domain validations performed at signup.
// Label:
//   - result: "ok", "rejected", or "cached"
var EmailDomainChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_domain_checks_total",
		Help:      "Total number of signup email domain checks, by result.",
	},
	[]string{"result"},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsSubmittedTotal counts applications accepted by the API.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications submitted.",
	},
)

// ApplicationStatusUpdatesTotal counts status changes applied by employers.
// Label:
//   - status: the new application status (e.g. "Shortlisted")
var ApplicationStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_status_updates_total",
		Help:      "Total number of application status updates, by new status.",
	},
	[]string{"status"},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailQueueDepth tracks the current number of messages waiting in the mail
// dispatcher channel.
var MailQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of messages pending in the mail dispatcher queue.",
	},
)

// MailSentTotal counts delivery attempts made by the mail dispatcher.
// Label:
//   - result: "ok" or "error"
var MailSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_sent_total",
		Help:      "Total number of mail delivery attempts, by result.",
	},
	[]string{"result"},
)
