package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestKeybaseNotifier_Send(t *testing.T) {
	var gotName string
	var gotArgs []string

	n := NewKeybaseNotifier("jry.zed")
	n.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte(`{"result":{"message":"sent"}}`), nil
	}

	err := n.Send(context.Background(), Payload{Channel: ChannelAlerts, Body: "openings!"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotName != "keybase" {
		t.Errorf("invoked %q, want keybase", gotName)
	}
	if len(gotArgs) != 4 || gotArgs[0] != "chat" || gotArgs[1] != "api" || gotArgs[2] != "-m" {
		t.Fatalf("unexpected argv: %v", gotArgs)
	}

	var call chatAPICall
	if err := json.Unmarshal([]byte(gotArgs[3]), &call); err != nil {
		t.Fatalf("api call is not valid JSON: %v", err)
	}

	if call.Method != "send" {
		t.Errorf("method = %q, want send", call.Method)
	}
	ch := call.Params.Options.Channel
	if ch.Name != "jry.zed" {
		t.Errorf("channel name = %q, want jry.zed", ch.Name)
	}
	if ch.MembersType != "team" {
		t.Errorf("members_type = %q, want team", ch.MembersType)
	}
	if ch.TopicName != "pcta-alerts" {
		t.Errorf("topic_name = %q, want pcta-alerts", ch.TopicName)
	}
	if call.Params.Options.Message.Body != "openings!" {
		t.Errorf("body = %q, want openings!", call.Params.Options.Message.Body)
	}
}

func TestKeybaseNotifier_TopicPerChannel(t *testing.T) {
	for _, channel := range []Channel{ChannelLogs, ChannelAlerts, ChannelErrors} {
		var call chatAPICall

		n := NewKeybaseNotifier("jry.zed")
		n.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
			if err := json.Unmarshal([]byte(args[len(args)-1]), &call); err != nil {
				t.Fatalf("api call is not valid JSON: %v", err)
			}
			return nil, nil
		}

		if err := n.Send(context.Background(), Payload{Channel: channel, Body: "x"}); err != nil {
			t.Fatalf("Send failed for %s: %v", channel, err)
		}
		if got := call.Params.Options.Channel.TopicName; got != string(channel) {
			t.Errorf("topic_name = %q, want %q", got, channel)
		}
	}
}

func TestKeybaseNotifier_ProcessFailure(t *testing.T) {
	n := NewKeybaseNotifier("jry.zed")
	n.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("keybase is not running"), errors.New("exit status 3")
	}

	err := n.Send(context.Background(), Payload{Channel: ChannelLogs, Body: "x"})
	if err == nil {
		t.Fatal("expected error when the keybase process fails")
	}
	if !strings.Contains(err.Error(), "keybase is not running") {
		t.Errorf("error %q does not include the process output", err)
	}
}
