package nats

import (
	"context"
	"fmt"
	"log"

	"devonn-assistant-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// HeaderEventType repeats the event code so consumers can filter without
// decoding the body.
const HeaderEventType = "Chat-Event-Type"

// Exporter copies conversation events onto the CHAT_EVENTS stream.
type Exporter struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewExporter(url string) (*Exporter, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}

	if err := ensureStream(context.Background(), js); err != nil {
		// exporting still works when the stream was created elsewhere
		log.Printf("Warn: chat event stream %s not ensured: %v", StreamName, err)
	}

	return &Exporter{nc: nc, js: js}, nil
}

// Publish writes the event envelope to chat.<event type>. Events about a
// single turn or message carry a dedup id, so a retried export is stored once.
func (x *Exporter) Publish(ctx context.Context, event events.Event) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}

	var opts []jetstream.PublishOpt
	if id := dedupID(event); id != "" {
		opts = append(opts, jetstream.WithMsgID(id))
	}
	if _, err := x.js.PublishMsg(ctx, msg, opts...); err != nil {
		return fmt.Errorf("failed to export %s to %s: %w", event.EventType(), msg.Subject, err)
	}
	return nil
}

func (x *Exporter) Close() {
	if x.nc != nil {
		x.nc.Close()
	}
}

func encode(event events.Event) (*nats.Msg, error) {
	data, err := events.Marshal(event)
	if err != nil {
		return nil, err
	}
	msg := nats.NewMsg(Subject(event.EventType()))
	msg.Header.Set(HeaderEventType, event.EventType())
	msg.Data = data
	return msg, nil
}

// dedupID keys an export on the event code and the turn or message it describes.
func dedupID(event events.Event) string {
	payload := event.Payload()
	for _, key := range []string{"turn_id", "message_id"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return event.EventType() + ":" + v
		}
	}
	return ""
}
