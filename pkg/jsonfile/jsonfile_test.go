package jsonfile

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Items []string `json:"items"`
}

func TestRead_MissingFile(t *testing.T) {
	// Подготовка
	store := NewStore()
	path := filepath.Join(t.TempDir(), "missing.json")

	// Действие
	var p payload
	err := store.Read(path, &p)

	// Проверки: отсутствующий файл читается как нулевое значение
	require.NoError(t, err)
	assert.Empty(t, p.Items)
}

func TestUpdate_RoundTrip(t *testing.T) {
	// Подготовка
	store := NewStore()
	path := filepath.Join(t.TempDir(), "data.json")

	// Действие
	var p payload
	err := store.Update(path, &p, func() error {
		p.Items = append(p.Items, "first")
		return nil
	})
	require.NoError(t, err)

	// Проверки
	var got payload
	require.NoError(t, store.Read(path, &got))
	assert.Equal(t, []string{"first"}, got.Items)
}

func TestUpdate_FnErrorSkipsWrite(t *testing.T) {
	// Подготовка
	store := NewStore()
	path := filepath.Join(t.TempDir(), "data.json")
	var p payload
	require.NoError(t, store.Update(path, &p, func() error {
		p.Items = []string{"kept"}
		return nil
	}))

	// Действие: fn возвращает ошибку, запись не должна произойти
	var next payload
	err := store.Update(path, &next, func() error {
		next.Items = []string{"dropped"}
		return assert.AnError
	})

	// Проверки
	require.Error(t, err)
	var got payload
	require.NoError(t, store.Read(path, &got))
	assert.Equal(t, []string{"kept"}, got.Items)
}

func TestUpdate_ConcurrentAppendsSerialize(t *testing.T) {
	// Подготовка
	store := NewStore()
	path := filepath.Join(t.TempDir(), "data.json")
	const writers = 20

	// Действие: параллельные добавления в один файл
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var p payload
			_ = store.Update(path, &p, func() error {
				p.Items = append(p.Items, "x")
				return nil
			})
		}()
	}
	wg.Wait()

	// Проверки: ни одна запись не потеряна
	var got payload
	require.NoError(t, store.Read(path, &got))
	assert.Len(t, got.Items, writers)
}
