package services

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// Which statuses the queue offers next. Nothing moves backward to pending.
// This is an affordance table for the UI, not a store-enforced state machine:
// a direct status write is accepted for any known status.
var nextStatuses = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCompleted, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
}

func NextStatuses(status string) []string {
	next, ok := nextStatuses[status]
	if !ok {
		return nil
	}
	out := make([]string, len(next))
	copy(out, next)
	return out
}

func KnownStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

func KnownOrderType(t string) bool {
	switch t {
	case OrderTypePickup, OrderTypeDelivery, OrderTypeDineIn:
		return true
	}
	return false
}
