package application

import (
	"context"

	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

// EventHandler reage a um evento. Handle é sempre executado de forma síncrona
// pelo despachante que o invoca.
type EventHandler[E domain.Event[T], T any] interface {
	Handle(ctx context.Context, event E) error
}

// EventDispatcher mantém o registro de manipuladores por nome de evento e
// notifica, em ordem de registro, os manipuladores do evento publicado.
type EventDispatcher[E domain.Event[T], T any] interface {
	Register(eventName string, handler EventHandler[E, T])
	Unregister(eventName string, handler EventHandler[E, T])
	UnregisterAll()
	Notify(ctx context.Context, event E) error
	EventHandlers() map[string][]EventHandler[E, T]
}
