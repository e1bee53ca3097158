package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Storage struct {
	Driver       StorageDriver `env:"STORAGE_DRIVER" envDefault:"FILE"`
	FilePath     string        `env:"STORAGE_FILE_PATH" envDefault:"data/products.json"`
	FlushRetries uint64        `env:"STORAGE_FLUSH_RETRIES" envDefault:"3"`
	FlushBackoff time.Duration `env:"STORAGE_FLUSH_BACKOFF" envDefault:"50ms"`
}

// StorageDriver selects where catalog snapshots are persisted.
type StorageDriver uint8

const (
	StorageDriverFile StorageDriver = iota
	StorageDriverPostgres
)

func (d StorageDriver) String() string {
	return []string{"FILE", "POSTGRES"}[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *StorageDriver) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "FILE":
		*d = StorageDriverFile
	case "POSTGRES":
		*d = StorageDriverPostgres
	default:
		return fmt.Errorf("unknown storage driver: %s", text)
	}
	return nil
}

func (d StorageDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (c Storage) Validate() error {
	if c.Driver == StorageDriverFile && c.FilePath == "" {
		return errors.New("storage file path is required for the file driver")
	}
	return nil
}
