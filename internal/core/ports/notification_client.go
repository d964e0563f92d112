package ports

import "context"

// NotificationClient is the outbound contract towards the external fulfillment
// system.
//
// Notify is best effort: true means the remote system confirmed receipt of the
// completion signal for the order, false means it did not, including after any
// retries the client performs internally. Retry policy is the client's own
// concern, never the caller's.
//
// A returned error signals a transport-level failure; callers treat it as
// "not notified" unless it is the context's cancellation error, which is an
// immediate stop signal for the whole batch.
type NotificationClient interface {
	Notify(ctx context.Context, orderID int64) (bool, error)
}
