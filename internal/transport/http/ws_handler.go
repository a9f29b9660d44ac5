package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"codescore-service/internal/app"
	"codescore-service/internal/domain"
	"github.com/gorilla/websocket"
)

var (
	errInvalidPayload  = errors.New("invalid payload")
	errUnsupportedType = errors.New("unsupported message type")
)

// WSHandler drives one arcade session per connection. Every inbound command
// maps to a single service call and is answered with a full state snapshot.
type WSHandler struct {
	service  *app.ArcadeService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.ArcadeService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	NumQuestions int `json:"numQuestions"`
}

type answerPayload struct {
	OptionIdx int `json:"optionIdx"`
}

type powerUpPayload struct {
	Kind string `json:"kind"`
}

type monsterPayload struct {
	MonsterID string `json:"monsterId"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs the command loop until the client
// disconnects. The profile is persisted on the way out.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		http.Error(w, "missing playerId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	defer h.service.Leave(r.Context(), playerID)

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	// Single writer goroutine so snapshot and error frames never interleave.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	// Initial snapshot so the client can render before the first command.
	if snapshot, err := h.service.Snapshot(r.Context(), playerID); err != nil {
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
	} else {
		send <- outboundMessage[any]{Type: "state", Payload: snapshot}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		snapshot, err := h.dispatch(r, playerID, inbound)
		if err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			continue
		}
		send <- outboundMessage[any]{Type: "state", Payload: snapshot}
	}

	close(send)
	<-writerDone
}

func (h *WSHandler) dispatch(r *http.Request, playerID string, inbound inboundMessage) (domain.GameSnapshot, error) {
	ctx := r.Context()
	switch inbound.Type {
	case "start":
		var payload startPayload
		payload.NumQuestions = domain.DefaultNumQuestions
		if len(inbound.Payload) > 0 {
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				return domain.GameSnapshot{}, errInvalidPayload
			}
		}
		return h.service.StartGame(ctx, playerID, payload.NumQuestions)
	case "state":
		return h.service.Snapshot(ctx, playerID)
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return domain.GameSnapshot{}, errInvalidPayload
		}
		return h.service.SubmitAnswer(ctx, playerID, payload.OptionIdx)
	case "next":
		return h.service.Advance(ctx, playerID)
	case "skip":
		return h.service.BuyPowerUp(ctx, playerID, domain.PowerUpSkip)
	case "powerup":
		var payload powerUpPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return domain.GameSnapshot{}, errInvalidPayload
		}
		return h.service.BuyPowerUp(ctx, playerID, domain.PowerUp(payload.Kind))
	case "buyMonster":
		var payload monsterPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return domain.GameSnapshot{}, errInvalidPayload
		}
		return h.service.BuyMonster(ctx, playerID, payload.MonsterID)
	case "selectMonster":
		var payload monsterPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return domain.GameSnapshot{}, errInvalidPayload
		}
		return h.service.SelectMonster(ctx, playerID, payload.MonsterID)
	default:
		return domain.GameSnapshot{}, errUnsupportedType
	}
}
