// Package notifier hands booking summaries to an outbound chat channel.
// The channel is a black box behind the interface; the default
// implementation builds a Messenger m.me link and logs it.
package notifier

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type Notifier interface {
	Notify(handle, subject, message string) error
}

type MessengerNotifier struct {
	log *zap.Logger
}

func NewMessenger(log *zap.Logger) *MessengerNotifier {
	return &MessengerNotifier{
		log: log.With(zap.String("notifier", "messenger")),
	}
}

func (n *MessengerNotifier) Notify(handle, subject, message string) error {
	link := fmt.Sprintf("https://m.me/%s?text=%s", handle, url.QueryEscape(message))

	n.log.Info("Booking notification",
		zap.String("subject", subject),
		zap.String("handle", handle),
		zap.String("messenger_link", link),
	)
	return nil
}
