package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"lms-chat-server/config/logger"
	"lms-chat-server/dto"
	"lms-chat-server/dto/req"
	"lms-chat-server/notification"
	"lms-chat-server/usecase"
)

// ClientConn is the slice of a websocket connection the relay needs.
// Keeping it narrow lets tests drive the hub with fake connections.
type ClientConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Envelope frames every inbound socket event.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outboundFrame struct {
	Event string             `json:"event"`
	Data  dto.MessagePayload `json:"data"`
}

// OutboundEvent addresses one broadcast to one named channel.
type OutboundEvent struct {
	Channel string
	Event   string
	Payload dto.MessagePayload
}

// WebSocketHandler relays messages between connected clients. Channels are
// session-scoped: one per chat a connection is viewing, plus one keyed by
// the connection's own uid for cross-conversation notifications. Chat
// channels and uid channels share a single namespace, so numeric chat ids
// and provider uids must not collide; provider uids are never numeric.
type WebSocketHandler struct {
	sync.Mutex
	Log *logger.AppLogger
	usecase.MessageUsecase
	Push      notification.Sender
	Clients   map[string]map[ClientConn]bool // channel -> member connections
	Broadcast chan OutboundEvent
}

func NewWebSocketHandler(log *logger.AppLogger, messageUsecase usecase.MessageUsecase, push notification.Sender) *WebSocketHandler {
	handler := &WebSocketHandler{
		Log:            log,
		MessageUsecase: messageUsecase,
		Push:           push,
		Clients:        make(map[string]map[ClientConn]bool),
		Broadcast:      make(chan OutboundEvent),
	}
	go handler.runBroadcast()
	return handler
}

func chatChannel(chatID uint) string {
	return strconv.FormatUint(uint64(chatID), 10)
}

func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	ctx := context.Background()
	sessionID := uuid.NewString()
	handler.Log.Relay.Info.Info().Str("session", sessionID).Msg("client connected")

	joined := make(map[string]bool)
	defer func() {
		for channel := range joined {
			handler.Leave(channel, c)
		}
		c.Close()
		handler.Log.Relay.Info.Info().Str("session", sessionID).Msg("client disconnected")
	}()

	for {
		var envelope Envelope
		if err := c.ReadJSON(&envelope); err != nil {
			handler.Log.Relay.Warning.Warn().Err(err).Str("session", sessionID).Msg("read error")
			break
		}

		switch envelope.Event {
		case "join_chat":
			var chatID uint
			if err := json.Unmarshal(envelope.Data, &chatID); err != nil {
				handler.Log.Relay.Warning.Warn().Err(err).Str("session", sessionID).Msg("bad join_chat payload")
				continue
			}
			channel := chatChannel(chatID)
			handler.Join(channel, c)
			joined[channel] = true

		case "join_user":
			var userUID string
			if err := json.Unmarshal(envelope.Data, &userUID); err != nil {
				handler.Log.Relay.Warning.Warn().Err(err).Str("session", sessionID).Msg("bad join_user payload")
				continue
			}
			handler.Join(userUID, c)
			joined[userUID] = true

		case "send_message":
			var payload req.SendMessageRequest
			if err := json.Unmarshal(envelope.Data, &payload); err != nil {
				handler.Log.Relay.Warning.Warn().Err(err).Str("session", sessionID).Msg("bad send_message payload")
				continue
			}
			handler.handleSendMessage(ctx, sessionID, &payload)

		default:
			handler.Log.Relay.Warning.Warn().Str("session", sessionID).Str("event", envelope.Event).Msg("unknown event")
		}
	}
}

// handleSendMessage persists the message, fans it out to the chat channel
// and the receiver's personal channel, then hands the composed push to a
// fire-and-forget goroutine. An unresolvable participant drops the message
// with no error frame back to the sender.
func (handler *WebSocketHandler) handleSendMessage(ctx context.Context, sessionID string, payload *req.SendMessageRequest) {
	message, push, err := handler.MessageUsecase.SendMessage(ctx, payload)
	if errors.Is(err, usecase.ErrUnknownParticipant) {
		handler.Log.Relay.Warning.Warn().
			Str("session", sessionID).
			Str("sender", payload.SenderFirebaseUID).
			Str("receiver", payload.ReceiverFirebaseUID).
			Msg("dropping message with unresolved participant")
		return
	}
	if err != nil {
		handler.Log.Relay.Error.Error().Err(err).Str("session", sessionID).Msg("failed to send message")
		return
	}

	handler.Broadcast <- OutboundEvent{
		Channel: chatChannel(message.ChatID),
		Event:   "receive_message",
		Payload: message,
	}
	handler.Broadcast <- OutboundEvent{
		Channel: message.ReceiverUID,
		Event:   "new_notification",
		Payload: message,
	}

	if push.Token != "" {
		go handler.dispatchPush(push, message.ReceiverUID)
	}
}

// dispatchPush runs outside the send path; delivery failure is logged and
// never affects relay delivery.
func (handler *WebSocketHandler) dispatchPush(push dto.PushNotification, receiverUID string) {
	if err := handler.Push.Send(context.Background(), &push); err != nil {
		handler.Log.Relay.Error.Error().Err(err).Str("receiver", receiverUID).Msg("push send failed")
		return
	}
	handler.Log.Relay.Info.Info().Str("receiver", receiverUID).Msg("push sent")
}

// Join adds a connection to a channel. Joins are idempotent and carry no
// acknowledgement.
func (handler *WebSocketHandler) Join(channel string, conn ClientConn) {
	handler.Mutex.Lock()
	defer handler.Mutex.Unlock()

	if handler.Clients[channel] == nil {
		handler.Clients[channel] = make(map[ClientConn]bool)
	}
	handler.Clients[channel][conn] = true
	handler.Log.Relay.Info.Info().Str("channel", channel).Int("members", len(handler.Clients[channel])).Msg("client joined channel")
}

func (handler *WebSocketHandler) Leave(channel string, conn ClientConn) {
	handler.Mutex.Lock()
	defer handler.Mutex.Unlock()

	if clients, ok := handler.Clients[channel]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(handler.Clients, channel)
		}
	}
}

func (handler *WebSocketHandler) runBroadcast() {
	for event := range handler.Broadcast {
		handler.Mutex.Lock()
		clients := handler.Clients[event.Channel]
		for conn := range clients {
			if err := conn.WriteJSON(outboundFrame{Event: event.Event, Data: event.Payload}); err != nil {
				handler.Log.Relay.Warning.Warn().Err(err).Str("channel", event.Channel).Msg("broadcast write failed")
				conn.Close()
				delete(clients, conn)
			}
		}
		handler.Mutex.Unlock()
	}
}
