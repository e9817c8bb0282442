package storage

import (
	"errors"
	"sync"

	"github.com/eugenenazirov/cube-packer/internal/packing"
)

const maxDimension = 1024

var (
	// ErrInvalidDimensions indicates the provided container dimensions violate
	// validation rules.
	ErrInvalidDimensions = errors.New("storage: container dimensions must be positive integers up to 1024")
)

var defaultSettings = Settings{
	Length: 10,
	Width:  10,
	Height: 10,
	Order:  packing.Ascending,
}

// Settings holds the default container used when a pack request omits
// dimensions, plus the default cube sort order.
type Settings struct {
	Length int
	Width  int
	Height int
	Order  packing.SortOrder
}

// Storage provides access to the default container settings used by the
// packing handlers.
type Storage interface {
	GetSettings() (Settings, error)
	SetSettings(s Settings) error
}

// MemoryStorage keeps the settings in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	settings Settings
}

// NewMemoryStorage initialises storage with the default container settings.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		settings: defaultSettings,
	}
}

// DefaultSettings returns the built-in default container settings.
func DefaultSettings() Settings {
	return defaultSettings
}

// GetSettings returns the currently configured settings.
func (s *MemoryStorage) GetSettings() (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings, nil
}

// SetSettings validates and stores the provided settings.
func (s *MemoryStorage) SetSettings(settings Settings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	return nil
}

func validateSettings(s Settings) error {
	for _, dim := range []int{s.Length, s.Width, s.Height} {
		if dim <= 0 || dim > maxDimension {
			return ErrInvalidDimensions
		}
	}
	if s.Order != packing.Ascending && s.Order != packing.Descending {
		return ErrInvalidDimensions
	}
	return nil
}
