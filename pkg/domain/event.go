package domain

import "time"

// Event representa um evento no sistema.
//
// EventName é a chave de despacho. Ela é informada explicitamente por quem cria
// o evento e não precisa coincidir com o nome do tipo concreto.
type Event[T any] interface {
	EventName() string
	Payload() T
	OccurredAt() time.Time
}

// event é a implementação imutável de Event.
type event[T any] struct {
	name       string
	payload    T
	occurredAt time.Time
}

func (e event[T]) EventName() string {
	return e.name
}

func (e event[T]) Payload() T {
	return e.payload
}

func (e event[T]) OccurredAt() time.Time {
	return e.occurredAt
}

// NewEvent cria um novo evento com o instante atual em UTC.
func NewEvent[T any](name string, payload T) Event[T] {
	return NewEventAt(name, payload, time.Now())
}

// NewEventAt cria um novo evento ocorrido no instante informado.
func NewEventAt[T any](name string, payload T, occurredAt time.Time) Event[T] {
	return event[T]{
		name:       name,
		payload:    payload,
		occurredAt: occurredAt.UTC(),
	}
}
