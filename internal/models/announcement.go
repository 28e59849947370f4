package models

// Announcement - опубликованная администрацией сводка PDF-документа.
// Может ссылаться на отчет по relatedReportId, ссылочная целостность
// не проверяется: висячая ссылка допустима.
type Announcement struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	ReportType      string `json:"reportType"`
	RelatedReportID string `json:"relatedReportId,omitempty"`
	PDFFileName     string `json:"pdfFileName"`
	PDFURL          string `json:"pdfUrl"`
	CreatedAt       string `json:"createdAt"`
	Status          string `json:"status"`
}

// AnnouncementFile - форма announcements.json: {"announcements": [...]}, новые сверху
type AnnouncementFile struct {
	Announcements []Announcement `json:"announcements"`
}
