package notification

import (
	"context"

	"lms-chat-server/dto"
)

// Sender delivers a composed push notification to the receiver's device.
// Delivery is best effort: callers log failures and never retry.
type Sender interface {
	Send(ctx context.Context, push *dto.PushNotification) error
}

// DisabledSender is used when no push credentials are configured.
type DisabledSender struct{}

func (DisabledSender) Send(ctx context.Context, push *dto.PushNotification) error {
	return nil
}
