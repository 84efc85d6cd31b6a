package identifier

import (
	"strings"

	"github.com/google/uuid"
)

// IDFactory выдаёт идентификаторы из 32 hex-символов на основе случайного UUID v4.
type IDFactory struct{}

func New() *IDFactory {
	return &IDFactory{}
}

func (f *IDFactory) NextID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
