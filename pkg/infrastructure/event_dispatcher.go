package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/mateusmacedo/go-ddd-events/pkg/application"
	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

// EventDispatcher é um despachante de eventos síncrono e em processo.
//
// Os manipuladores são mantidos por nome de evento na ordem em que foram
// registrados. Um mesmo manipulador pode ser registrado mais de uma vez e será
// chamado uma vez por registro. A identidade usada em Unregister é a igualdade
// de interface do Go, portanto o tipo dinâmico do manipulador deve ser
// comparável (normalmente um ponteiro).
type EventDispatcher[E domain.Event[T], T any] struct {
	handlers map[string][]application.EventHandler[E, T]
	mu       sync.RWMutex
	logger   application.AppLogger
}

var _ application.EventDispatcher[domain.Event[string], string] = (*EventDispatcher[domain.Event[string], string])(nil)

// NewEventDispatcher cria uma nova instância do EventDispatcher.
func NewEventDispatcher[E domain.Event[T], T any](logger application.AppLogger) *EventDispatcher[E, T] {
	return &EventDispatcher[E, T]{
		handlers: make(map[string][]application.EventHandler[E, T]),
		logger:   logger,
	}
}

// Register adiciona o manipulador ao final da lista do evento.
func (d *EventDispatcher[E, T]) Register(eventName string, handler application.EventHandler[E, T]) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Unregister remove a primeira ocorrência do manipulador. A chave do evento
// permanece no registro mesmo que a lista fique vazia.
func (d *EventDispatcher[E, T]) Unregister(eventName string, handler application.EventHandler[E, T]) {
	d.mu.Lock()
	defer d.mu.Unlock()

	handlers, found := d.handlers[eventName]
	if !found {
		return
	}

	for i, h := range handlers {
		if h == handler {
			remaining := make([]application.EventHandler[E, T], 0, len(handlers)-1)
			remaining = append(remaining, handlers[:i]...)
			remaining = append(remaining, handlers[i+1:]...)
			d.handlers[eventName] = remaining
			return
		}
	}
}

// UnregisterAll descarta todo o registro, inclusive as chaves.
func (d *EventDispatcher[E, T]) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = make(map[string][]application.EventHandler[E, T])
}

// Notify chama, no goroutine atual e em ordem de registro, cada manipulador
// registrado para event.EventName().
//
// A lista é copiada antes da primeira chamada: alterações feitas no registro
// por um manipulador só valem para as próximas notificações. O primeiro erro
// interrompe a notificação e é devolvido ao chamador.
func (d *EventDispatcher[E, T]) Notify(ctx context.Context, event E) error {
	eventName := event.EventName()

	d.mu.RLock()
	handlers, found := d.handlers[eventName]
	snapshot := append([]application.EventHandler[E, T](nil), handlers...)
	d.mu.RUnlock()

	if !found {
		application.LogDebug(ctx, d.logger, "no handler registered for event", map[string]interface{}{
			"event_name": eventName,
		})
		return nil
	}

	for position, handler := range snapshot {
		if err := handler.Handle(ctx, event); err != nil {
			application.LogError(ctx, d.logger, "error handling event", err, map[string]interface{}{
				"event_name": eventName,
				"position":   position,
			})
			return fmt.Errorf("handling event %s: %w", eventName, err)
		}
	}

	application.LogDebug(ctx, d.logger, "event notified", map[string]interface{}{
		"event_name": eventName,
		"handlers":   len(snapshot),
	})
	return nil
}

// EventHandlers devolve uma cópia do registro atual. Uma chave ausente indica
// que nada foi registrado para o evento; uma lista vazia indica que todos os
// manipuladores foram removidos.
func (d *EventDispatcher[E, T]) EventHandlers() map[string][]application.EventHandler[E, T] {
	d.mu.RLock()
	defer d.mu.RUnlock()

	registry := make(map[string][]application.EventHandler[E, T], len(d.handlers))
	for name, handlers := range d.handlers {
		registry[name] = append(make([]application.EventHandler[E, T], 0, len(handlers)), handlers...)
	}
	return registry
}

// HandlersFor devolve os manipuladores de um único evento e se a chave existe.
func (d *EventDispatcher[E, T]) HandlersFor(eventName string) ([]application.EventHandler[E, T], bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	handlers, found := d.handlers[eventName]
	if !found {
		return nil, false
	}
	return append(make([]application.EventHandler[E, T], 0, len(handlers)), handlers...), true
}
