// Package mirror хранит локальные снимки коллекций в JSON-файлах.
// Снимок — источник данных при недоступности удаленной базы.
package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ordersFile = "orders.json"
	usersFile  = "users.json"

	snapshotPerm = 0o644
	dirPerm      = 0o755
)

// writeSnapshot атомарно заменяет файл снимка через временный файл.
func writeSnapshot(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, snapshotPerm); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}

// readSnapshot читает файл снимка. Отсутствующий или пустой файл — не
// ошибка: коллекция просто считается пустой.
func readSnapshot(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	return nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create mirror dir: %w", err)
	}
	return nil
}

func snapshotPath(dir, file string) string {
	return filepath.Join(dir, file)
}
