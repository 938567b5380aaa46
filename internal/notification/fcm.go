package notification

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"firebase.google.com/go/v4/messaging"
)

// fcmBroadcaster sends each notification to an FCM topic that admin devices
// subscribe to.
type fcmBroadcaster struct {
	client *messaging.Client
	topic  string
}

func NewFCMBroadcaster(client *messaging.Client, topic string) Broadcaster {
	return &fcmBroadcaster{client: client, topic: topic}
}

func (f *fcmBroadcaster) Broadcast(ctx context.Context, n *Notification) error {
	if f.client == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	data := map[string]string{
		"type":            n.Type,
		"notification_id": strconv.FormatUint(uint64(n.ID), 10),
	}
	if n.BookingID != nil {
		data["booking_id"] = strconv.FormatUint(uint64(*n.BookingID), 10)
	}

	message := &messaging.Message{
		Topic: f.topic,
		Notification: &messaging.Notification{
			Title: "New Seva Booking",
			Body:  n.Message,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID:    "seva_bookings",
				DefaultSound: true,
			},
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: "New Seva Booking",
				Body:  n.Message,
				Icon:  "/icon-192x192.png",
			},
		},
	}

	response, err := f.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %v", err)
	}
	log.Printf("✅ FCM message sent to topic %s: %s", f.topic, response)
	return nil
}
