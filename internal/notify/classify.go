package notify

import (
	"fmt"
	"strings"

	"github.com/jryio/pcta/internal/availability"
)

// Classify maps a scrape outcome to the notification describing it. now is
// the scrape timestamp and appears verbatim in every body.
//
//   - a failed pass goes to the errors channel with the error description
//     inside a fenced block, so operators can diagnose without log access;
//   - a clean pass with no openings goes to the logs channel;
//   - a clean pass with openings goes to the alerts channel, one line per
//     opening with its remaining capacity.
func Classify(o Outcome, now string) Payload {
	if o.Failed() {
		return Payload{
			Channel: ChannelErrors,
			Body:    fmt.Sprintf("Failed to scrape the PCTA permit page with error =\n\n```\n%s\n```\n", o.Err()),
		}
	}

	openings := o.Openings()
	if len(openings) == 0 {
		return Payload{
			Channel: ChannelLogs,
			Body:    fmt.Sprintf("`%s` @ There are zero available permits in the date range", now),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*There are %d NEW starting dates open!*\n\n", len(openings))
	for _, op := range openings {
		fmt.Fprintf(&b, "* `%s`: %d\n", op.Date.Format(availability.DateFormat), op.Remaining)
	}
	fmt.Fprintf(&b, "\n`%s` - Scrape time\n", now)

	return Payload{Channel: ChannelAlerts, Body: b.String()}
}
