package config

import "errors"

type Hub struct {
	InboxSize int `env:"HUB_INBOX_SIZE" envDefault:"256"`
	QueueSize int `env:"HUB_SUBSCRIBER_QUEUE_SIZE" envDefault:"64"`
}

func (c Hub) Validate() error {
	if c.InboxSize <= 0 || c.QueueSize <= 0 {
		return errors.New("hub inbox and subscriber queue sizes must be positive")
	}
	return nil
}
