package notify

import "log"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier is the sink for user-facing messages ("Added to Cart",
// "Order Placed Successfully", validation errors). How they are rendered
// is up to the implementation; the core only emits.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(title, message string, severity Severity) {
	log.Printf("[notify:%s] %s – %s", severity, title, message)
}
