package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// Wire shape of a keybase chat api "send" call.
type chatChannel struct {
	Name        string `json:"name"`
	MembersType string `json:"members_type"`
	TopicName   string `json:"topic_name"`
}

type chatMessage struct {
	Body string `json:"body"`
}

type chatOptions struct {
	Channel chatChannel `json:"channel"`
	Message chatMessage `json:"message"`
}

type chatParams struct {
	Options chatOptions `json:"options"`
}

type chatAPICall struct {
	Method string     `json:"method"`
	Params chatParams `json:"params"`
}

// runner executes an external command and returns its combined output.
// Injected in tests so no keybase binary is needed.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// KeybaseNotifier posts payloads to a Keybase team via the keybase CLI's
// chat api. The invocation is awaited and its exit status checked; a
// failed send is returned to the caller, never silently dropped.
type KeybaseNotifier struct {
	team string
	run  runner
}

// NewKeybaseNotifier creates a notifier posting to the given team's topics.
func NewKeybaseNotifier(team string) *KeybaseNotifier {
	return &KeybaseNotifier{team: team, run: execRunner}
}

// Send marshals the chat api envelope and invokes keybase with it.
func (n *KeybaseNotifier) Send(ctx context.Context, p Payload) error {
	call := chatAPICall{
		Method: "send",
		Params: chatParams{
			Options: chatOptions{
				Channel: chatChannel{
					Name:        n.team,
					MembersType: "team",
					TopicName:   string(p.Channel),
				},
				Message: chatMessage{Body: p.Body},
			},
		},
	}

	msg, err := json.Marshal(call)
	if err != nil {
		// Only reachable through a programming defect in the envelope
		// types, never through environmental conditions.
		return fmt.Errorf("building keybase chat api call: %w", err)
	}

	out, err := n.run(ctx, "keybase", "chat", "api", "-m", string(msg))
	if err != nil {
		return fmt.Errorf("keybase chat api: %w (output: %s)", err, bytes.TrimSpace(out))
	}

	return nil
}
