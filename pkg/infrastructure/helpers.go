package infrastructure

import (
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

func GenerateUUID() string {
	return uuid.New().String()
}

// NewUUIDGenerator devolve o gerador de IDs usado pelos comandos de criação.
func NewUUIDGenerator() domain.IDGenerator[string] {
	return GenerateUUID
}
