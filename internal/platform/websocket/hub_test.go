package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestHub() *Hub {
	return NewHub(zerolog.Nop())
}

func newTestClient(id string, topics ...string) *Client {
	return &Client{
		ID:     id,
		Topics: topics,
		Send:   make(chan []byte, 256),
	}
}

func TestHub_RegisterClient(t *testing.T) {
	hub := newTestHub()
	client := newTestClient("client-1", "doctor:abc")

	hub.Register(client)

	if hub.ClientCount() != 1 {
		t.Fatalf("expected 1 client, got %d", hub.ClientCount())
	}
	if hub.TopicCount("doctor:abc") != 1 {
		t.Fatalf("expected 1 client on doctor:abc, got %d", hub.TopicCount("doctor:abc"))
	}
}

func TestHub_UnregisterClient(t *testing.T) {
	hub := newTestHub()
	client := newTestClient("client-2", "doctor:abc")

	hub.Register(client)
	hub.Unregister(client)

	if hub.ClientCount() != 0 {
		t.Fatalf("expected 0 clients, got %d", hub.ClientCount())
	}
	if hub.TopicCount("doctor:abc") != 0 {
		t.Fatalf("expected 0 clients on doctor:abc, got %d", hub.TopicCount("doctor:abc"))
	}

	// Unregistering twice is a no-op, not a double close.
	hub.Unregister(client)
}

func TestHub_BroadcastToTopic(t *testing.T) {
	hub := newTestHub()
	subscriber := newTestClient("sub-1", "doctor:abc")
	nonSubscriber := newTestClient("non-sub-1", "doctor:other")
	hub.Register(subscriber)
	hub.Register(nonSubscriber)

	event := Event{
		Type:         "appointment.created",
		Topic:        "doctor:abc",
		ResourceType: "Appointment",
		ResourceID:   "123",
		Timestamp:    time.Now(),
	}
	hub.Broadcast("doctor:abc", event)

	select {
	case msg := <-subscriber.Send:
		var received Event
		if err := json.Unmarshal(msg, &received); err != nil {
			t.Fatalf("failed to unmarshal event: %v", err)
		}
		if received.Type != "appointment.created" {
			t.Fatalf("expected appointment.created, got %s", received.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	select {
	case <-nonSubscriber.Send:
		t.Fatal("non-subscriber must not receive the event")
	default:
	}
}

func TestHub_SlowClientSkipped(t *testing.T) {
	hub := newTestHub()
	slow := &Client{ID: "slow", Topics: []string{"doctor:abc"}, Send: make(chan []byte, 1)}
	hub.Register(slow)

	event := Event{Type: "appointment.created", Topic: "doctor:abc"}
	hub.Broadcast("doctor:abc", event) // fills the buffer
	hub.Broadcast("doctor:abc", event) // must not block

	if got := len(slow.Send); got != 1 {
		t.Fatalf("expected 1 buffered message, got %d", got)
	}
}

func TestHub_SubscribeUnsubscribe(t *testing.T) {
	hub := newTestHub()
	client := newTestClient("client-3")
	hub.Register(client)

	hub.ProcessMessage(client, ClientMessage{Action: "subscribe", Topics: []string{"doctor:abc"}})
	if hub.TopicCount("doctor:abc") != 1 {
		t.Fatalf("subscribe did not register the topic")
	}

	hub.ProcessMessage(client, ClientMessage{Action: "unsubscribe", Topics: []string{"doctor:abc"}})
	if hub.TopicCount("doctor:abc") != 0 {
		t.Fatalf("unsubscribe did not drop the topic")
	}
	if len(client.Topics) != 0 {
		t.Fatalf("client topic list should be empty, got %v", client.Topics)
	}
}

func TestHub_PublishUsesEventTopic(t *testing.T) {
	hub := newTestHub()
	client := newTestClient("client-4", "doctor:abc")
	hub.Register(client)

	err := hub.Publish(context.Background(), Event{Type: "appointment.cancelled", Topic: "doctor:abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-client.Send:
	case <-time.After(time.Second):
		t.Fatal("publish did not reach the topic subscriber")
	}
}
