package utils

import (
	"github.com/beyondstorage/go-storage/v4/services"
	"github.com/beyondstorage/go-storage/v4/types"
)

// NewStoragerFromString connects a storager by connection string, e.g. "memory:///tmp".
// The service must be registered by importing it.
func NewStoragerFromString(connString string) (types.Storager, error) {
	return services.NewStoragerFromString(connString)
}
