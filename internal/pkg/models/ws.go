package models

import "encoding/json"

// WSMessage is the envelope for all websocket traffic on the tracking feed.
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewWSMessage builds an envelope, marshaling the payload.
func NewWSMessage(event string, data interface{}) (WSMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return WSMessage{}, err
	}
	return WSMessage{Event: event, Data: raw}, nil
}

// PositionFixPayload is an inbound GPS fix from the device.
type PositionFixPayload struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"` // millis
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// PositionErrorPayload is an inbound positioning fault from the device.
type PositionErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
