package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/job-portal-api/internal/api/metrics"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64
	sendTimeout    = 30 * time.Second
)

// MailDispatcher carries non-critical outbound mail (verification
// links) off the request path. Jobs are closures so the queue stays
// independent of the mail transport. Delivery order is not guaranteed
// and does not matter for account mail.
type MailDispatcher struct {
	jobs    chan func(ctx context.Context) error
	workers int
	log     zerolog.Logger
}

// NewMailDispatcher creates a dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &MailDispatcher{
		jobs:    make(chan func(ctx context.Context) error, channelBuffer),
		workers: numWorkers,
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is
// cancelled; jobs still buffered at shutdown are dropped.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue hands a send job to the workers. When the buffer is full the
// job is dropped with a warning rather than blocking a request.
func (d *MailDispatcher) Enqueue(send func(ctx context.Context) error) {
	select {
	case d.jobs <- send:
		metrics.MailQueueDepth.Set(float64(len(d.jobs)))
	default:
		d.log.Warn().Msg("mail queue full, dropping message")
	}
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case send, ok := <-d.jobs:
			if !ok {
				return
			}
			metrics.MailQueueDepth.Set(float64(len(d.jobs)))

			sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
			err := send(sendCtx)
			cancel()
			if err != nil {
				d.log.Error().Err(err).Int("worker_id", id).Msg("mail delivery failed")
				metrics.MailSentTotal.WithLabelValues("error").Inc()
				continue
			}
			metrics.MailSentTotal.WithLabelValues("ok").Inc()
		}
	}
}
