package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jryio/pcta/internal/availability"
)

const stamp = "2023-04-02T13:05:00-07:00"

func TestClassify_EmptySuccess(t *testing.T) {
	p := Classify(Success(nil), stamp)

	if p.Channel != ChannelLogs {
		t.Errorf("channel = %s, want %s", p.Channel, ChannelLogs)
	}
	if !strings.Contains(p.Body, stamp) {
		t.Errorf("body %q does not contain the timestamp", p.Body)
	}
	if !strings.Contains(p.Body, "zero available permits") {
		t.Errorf("body %q does not state zero results", p.Body)
	}
}

func TestClassify_OpeningsFound(t *testing.T) {
	openings := availability.Result{
		{Date: time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC), Remaining: 5},
		{Date: time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC), Remaining: 10},
	}

	p := Classify(Success(openings), stamp)

	if p.Channel != ChannelAlerts {
		t.Errorf("channel = %s, want %s", p.Channel, ChannelAlerts)
	}

	for _, want := range []string{
		"2 NEW starting dates",
		"`2023-04-10`: 5",
		"`2023-04-12`: 10",
		stamp,
	} {
		if !strings.Contains(p.Body, want) {
			t.Errorf("body %q does not contain %q", p.Body, want)
		}
	}

	// Openings are listed in result order.
	if strings.Index(p.Body, "2023-04-10") > strings.Index(p.Body, "2023-04-12") {
		t.Errorf("openings are out of order in body %q", p.Body)
	}
}

func TestClassify_Failure(t *testing.T) {
	p := Classify(Failure(errors.New("boom")), stamp)

	if p.Channel != ChannelErrors {
		t.Errorf("channel = %s, want %s", p.Channel, ChannelErrors)
	}
	if !strings.Contains(p.Body, "boom") {
		t.Errorf("body %q does not contain the error description", p.Body)
	}
	if !strings.Contains(p.Body, "```") {
		t.Errorf("body %q does not fence the error description", p.Body)
	}
}

func TestOutcome(t *testing.T) {
	if Success(nil).Failed() {
		t.Error("Success outcome reported Failed")
	}
	if !Failure(errors.New("x")).Failed() {
		t.Error("Failure outcome did not report Failed")
	}
	if got := Failure(errors.New("x")).Err().Error(); got != "x" {
		t.Errorf("Err() = %q, want x", got)
	}
}
