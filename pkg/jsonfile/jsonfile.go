package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store - небольшое хранилище плоских JSON-файлов с блокировкой на файл.
// Все изменения идут через цикл "прочитать-изменить-записать" под мьютексом
// конкретного файла, запись выполняется атомарно через временный файл и
// rename. Это закрывает гонку "последний пишущий побеждает" при
// одновременных отправках в одну категорию.
type Store struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		locks: make(map[string]*sync.Mutex),
	}
}

// lockFor возвращает мьютекс для пути, создавая его при первом обращении
func (s *Store) lockFor(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[path]
	if !ok {
		l = &sync.Mutex{}
		s.locks[path] = l
	}
	return l
}

// Read читает JSON-файл в v. Отсутствующий файл не является ошибкой:
// v остается нулевым значением.
func (s *Store) Read(path string, v any) error {
	l := s.lockFor(path)
	l.Lock()
	defer l.Unlock()
	return readJSON(path, v)
}

// Update выполняет чтение-изменение-запись файла под блокировкой.
// fn получает десериализованное содержимое и возвращает ошибку,
// если запись производить не нужно.
func (s *Store) Update(path string, v any, fn func() error) error {
	l := s.lockFor(path)
	l.Lock()
	defer l.Unlock()

	if err := readJSON(path, v); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return writeJSON(path, v)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSON пишет файл атомарно: сначала во временный файл рядом,
// затем rename. Отступ в два пробела сохраняет формат исходных файлов.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
