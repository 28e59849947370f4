package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/civicmap/civic-reports/internal/models"
	"github.com/civicmap/civic-reports/internal/service"
	"github.com/civicmap/civic-reports/pkg/jsonfile"
)

const announcementsFileName = "announcements.json"

// AnnouncementRepository хранит анонсы в announcements.json и
// загруженные PDF отдельными файлами в публичном каталоге.
type AnnouncementRepository struct {
	store     *jsonfile.Store
	dataDir   string
	publicDir string
}

func NewAnnouncementRepository(store *jsonfile.Store, dataDir, publicDir string) service.AnnouncementRepository {
	return &AnnouncementRepository{
		store:     store,
		dataDir:   dataDir,
		publicDir: publicDir,
	}
}

func (r *AnnouncementRepository) path() string {
	return filepath.Join(r.dataDir, announcementsFileName)
}

// List возвращает все анонсы в порядке файла, новые первыми
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	var file models.AnnouncementFile
	if err := r.store.Read(r.path(), &file); err != nil {
		return nil, fmt.Errorf("failed to read announcements: %w", err)
	}
	if file.Announcements == nil {
		file.Announcements = []models.Announcement{}
	}
	return file.Announcements, nil
}

// Create добавляет анонс в начало коллекции
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	var file models.AnnouncementFile
	err := r.store.Update(r.path(), &file, func() error {
		file.Announcements = append([]models.Announcement{*a}, file.Announcements...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store announcement: %w", err)
	}
	return nil
}

// Delete убирает анонс из коллекции и удаляет его PDF с диска.
// Уже отсутствующий PDF не считается ошибкой.
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	var pdfFileName string
	var file models.AnnouncementFile
	err := r.store.Update(r.path(), &file, func() error {
		for i := range file.Announcements {
			if file.Announcements[i].ID == id {
				pdfFileName = file.Announcements[i].PDFFileName
				file.Announcements = append(file.Announcements[:i], file.Announcements[i+1:]...)
				return nil
			}
		}
		return errSkipWrite
	})
	if err != nil {
		if errors.Is(err, errSkipWrite) {
			return fmt.Errorf("announcement %s: %w", id, service.ErrNotFound)
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	if pdfFileName != "" {
		pdfPath := filepath.Join(r.publicDir, pdfFileName)
		if err := os.Remove(pdfPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove announcement PDF: %w", err)
		}
	}
	return nil
}

// SavePDF сохраняет документ под именем announcement-<epoch-ms>-<имя>
// в публичном каталоге и возвращает имя файла и URL для скачивания.
func (r *AnnouncementRepository) SavePDF(ctx context.Context, originalName string, data []byte) (string, string, error) {
	fileName := fmt.Sprintf("announcement-%d-%s", time.Now().UnixMilli(), sanitizeFileName(originalName))

	if err := os.MkdirAll(r.publicDir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create announcements directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.publicDir, fileName), data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write announcement PDF: %w", err)
	}

	return fileName, "/announcements/" + fileName, nil
}

// sanitizeFileName отрезает путь и пробелы из клиентского имени файла
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "-")
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "document.pdf"
	}
	return name
}
