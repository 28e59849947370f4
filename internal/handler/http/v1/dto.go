package v1

// LocationDTO - координаты и адрес в запросах и ответах
// @Description Координаты и адрес отчета
type LocationDTO struct {
	Lat     float64 `json:"lat" validate:"latitude"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Address string  `json:"address,omitempty"`
	City    string  `json:"city,omitempty"`
	State   string  `json:"state,omitempty"`
}

// ImageDTO - изображение, встроенное в тело запроса
// @Description Изображение отчета в base64
type ImageDTO struct {
	MimeType string `json:"mimeType" validate:"required"`
	Base64   string `json:"base64" validate:"required,base64"`
}

// CreateReportRequest DTO для создания отчета
// @Description DTO для создания отчета
type CreateReportRequest struct {
	Type        string      `json:"type" validate:"required,oneof=issue idea community-event government-event"`
	Description string      `json:"description,omitempty" validate:"max=5000"`
	Location    LocationDTO `json:"location" validate:"required"`
	Images      []ImageDTO  `json:"images,omitempty" validate:"max=5,dive"`
}

// ReportResponse DTO для ответа с информацией об отчете
// @Description DTO для ответа с информацией об отчете
type ReportResponse struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Location    LocationDTO `json:"location"`
	Timestamp   string      `json:"timestamp"`
	Status      string      `json:"status"`
	Votes       int         `json:"votes"`
	Downvotes   int         `json:"downvotes"`
	Tag         string      `json:"category,omitempty"`
	Images      []ImageDTO  `json:"images,omitempty"`
}

// CreateReportResponse DTO для успешного создания отчета
// @Description DTO для успешного создания отчета
type CreateReportResponse struct {
	Success bool           `json:"success"`
	Report  ReportResponse `json:"report"`
}

// ReportsListResponse DTO для ответа со списком отчетов
// @Description DTO для ответа со списком отчетов
type ReportsListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// DuplicateReportInfo - данные существующего отчета в ответе о дубликате
// @Description Данные существующего отчета поблизости
type DuplicateReportInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Votes       int    `json:"votes"`
}

// DuplicateResponse DTO для отказа из-за дубликата поблизости
// @Description DTO для отказа из-за дубликата поблизости
type DuplicateResponse struct {
	Error          string              `json:"error"`
	ExistingReport DuplicateReportInfo `json:"existingReport"`
	DistanceMeters float64             `json:"distanceMeters"`
}

// VoteResponse DTO для ответа на голос "за"
// @Description DTO для ответа на голос
type VoteResponse struct {
	Success bool `json:"success"`
	Votes   int  `json:"votes"`
}

// DownvoteResponse DTO для ответа на голос "против"
// @Description DTO для ответа на голос против
type DownvoteResponse struct {
	Success   bool `json:"success"`
	Downvotes int  `json:"downvotes"`
}

// VoteHistoryResponse DTO для истории голосов клиента
// @Description DTO для истории голосов клиента
type VoteHistoryResponse struct {
	ClientID string            `json:"clientId"`
	Votes    map[string]string `json:"votes"`
}

// AnnouncementResponse DTO для ответа с информацией об анонсе
// @Description DTO для ответа с информацией об анонсе
type AnnouncementResponse struct {
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

// AnnouncementsListResponse DTO для ответа со списком анонсов
// @Description DTO для ответа со списком анонсов
type AnnouncementsListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

// CreateAnnouncementResponse DTO для успешной публикации анонса
// @Description DTO для успешной публикации анонса
type CreateAnnouncementResponse struct {
	Success      bool                 `json:"success"`
	Announcement AnnouncementResponse `json:"announcement"`
}

// DeleteAnnouncementResponse DTO для подтверждения удаления анонса
// @Description DTO для подтверждения удаления анонса
type DeleteAnnouncementResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateAnnouncementForm - поля multipart-формы создания анонса
// @Description Поля multipart-формы создания анонса
type CreateAnnouncementForm struct {
	Title           string `form:"title" validate:"required,min=2,max=255"`
	ReportType      string `form:"reportType" validate:"required,oneof=issue idea community-event government-event"`
	RelatedReportID string `form:"relatedReportId"`
}
