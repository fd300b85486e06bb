// Package notify isolates outbound transactional email behind a narrow
// interface so the order workflow can be tested with a fake that records
// calls instead of performing network I/O.
package notify

import "context"

type Notifier interface {
	// Send delivers one plain-text message. No retries; the caller decides
	// what a failure means for the operation that triggered it.
	Send(ctx context.Context, to, subject, body string) error
}
