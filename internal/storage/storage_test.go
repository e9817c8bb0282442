package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/eugenenazirov/cube-packer/internal/packing"
)

func TestNewMemoryStorageReturnsDefaults(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != DefaultSettings() {
		t.Fatalf("expected default settings %v, got %v", DefaultSettings(), got)
	}
}

func TestSetSettingsUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	want := Settings{Length: 4, Width: 3, Height: 2, Order: packing.Descending}
	if err := store.SetSettings(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSetSettingsRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := []Settings{
		{},
		{Length: 0, Width: 5, Height: 5},
		{Length: 5, Width: -1, Height: 5},
		{Length: 5, Width: 5, Height: 0},
		{Length: 5, Width: 5, Height: maxDimension + 1},
		{Length: 5, Width: 5, Height: 5, Order: packing.SortOrder(7)},
	}

	for idx, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			store := NewMemoryStorage()
			if err := store.SetSettings(tc); !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions for %v, got %v", tc, err)
			}
		})
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			settings := Settings{Length: 1 + offset, Width: 2 + offset, Height: 3 + offset}
			if err := store.SetSettings(settings); err != nil {
				t.Errorf("SetSettings failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.GetSettings(); err != nil {
				t.Errorf("GetSettings failed: %v", err)
			}
		}()
	}

	wg.Wait()

	// final read should succeed
	if _, err := store.GetSettings(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
