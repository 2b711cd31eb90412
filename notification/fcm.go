package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"lms-chat-server/dto"
)

// FCMSender dispatches notifications through Firebase Cloud Messaging
// using a service-account credentials file.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(ctx context.Context, credentialsFile string) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init fcm client: %w", err)
	}
	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, push *dto.PushNotification) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: push.Token,
		Notification: &messaging.Notification{
			Title: push.Title,
			Body:  push.Body,
		},
		Data: push.Data,
	})
	return err
}
