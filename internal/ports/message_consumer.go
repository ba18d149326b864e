package ports

import "context"

// MessageConsumer — фоновый источник заявок на создание заказов.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
