package pubsub

import (
	"encoding/json"

	"farmlease/internal/domain/service"
	"farmlease/internal/errors"
)

// encodedEvent is a farm event ready for either transport.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
}

// encodeEvent serializes event and derives the attributes subscribers filter
// on. Every event of one plot shares the plot id, which is also the ordering
// key on Google Pub/Sub.
func encodeEvent(event *service.FarmEvent) (*encodedEvent, error) {
	if event == nil {
		return nil, errors.New("nil farm event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s event", event.Type)
	}

	attributes := map[string]string{
		"type":    string(event.Type),
		"plot_id": event.PlotID,
	}
	if event.ActorID != "" {
		attributes["actor_id"] = event.ActorID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &encodedEvent{data: data, attributes: attributes}, nil
}
