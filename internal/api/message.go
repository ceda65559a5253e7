// internal/api/message.go
package api

import (
	"encoding/json"

	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Типы сообщений сервер → клиент.
const (
	TypeSnapshot = "snapshot"
	TypeNotice   = "notice"
	TypeAck      = "ack"
)

// Типы намерений клиент → сервер.
const (
	IntentStart   = "start"
	IntentReset   = "reset"
	IntentPlace   = "place"
	IntentAbility = "ability"
	IntentPause   = "pause"
	IntentSpeed   = "speed"
)

type clientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Intent is a decoded player command waiting for the loop owner.
type Intent struct {
	Kind   string         `json:"kind"`
	Level  string         `json:"level,omitempty"`
	Cell   pathmap.Cell   `json:"cell"`
	UnitID string         `json:"unit,omitempty"`
	Target types.EntityID `json:"unit_id,omitempty"`
	Speed  float64        `json:"speed,omitempty"`

	client *Client
}

// Ack answers one intent, only to the client that sent it.
type Ack struct {
	Intent string         `json:"intent"`
	OK     bool           `json:"ok"`
	Result string         `json:"result,omitempty"`
	UnitID types.EntityID `json:"unit_id,omitempty"`
	Speed  float64        `json:"speed,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func decodeIntent(data []byte) (Intent, error) {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Intent{}, err
	}
	var in Intent
	if len(msg.Payload) > 0 && string(msg.Payload) != "null" {
		if err := json.Unmarshal(msg.Payload, &in); err != nil {
			return Intent{}, err
		}
	}
	in.Kind = msg.Type
	return in, nil
}
