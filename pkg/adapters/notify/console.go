package notify

import (
	"fmt"
	"os"
	"time"

	"github.com/lexportal/lexmark/pkg/ports"
)

// ConsoleNotifier writes transient notifications to stderr. The duration
// is part of the port contract (views with real surfaces animate it); in a
// terminal the message simply prints once.
type ConsoleNotifier struct{}

func (ConsoleNotifier) Notify(message string, duration time.Duration) {
	fmt.Fprintln(os.Stderr, message)
}

// Ensure interface compliance
var _ ports.Notifier = ConsoleNotifier{}
