package broker

import "context"

type Producer interface {
	SendMessage(ctx context.Context, value []byte) error
}

// Nop discards messages. Used when no broker is configured.
type Nop struct{}

func (Nop) SendMessage(ctx context.Context, value []byte) error {
	return nil
}
