package models

// Location - координаты отчета. Для кластеризации и дедупликации
// используются только lat/lng, адресные поля заполняются клиентом.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	City    string  `json:"city,omitempty"`
	State   string  `json:"state,omitempty"`
}

// ReportImage - фотография, встроенная прямо в JSON-запись
type ReportImage struct {
	MimeType string `json:"mimeType"`
	Base64   string `json:"base64"`
}

// Report - атомарная единица гражданского обращения.
// ID уникален внутри категории: <префикс>-<номер с ведущими нулями>.
type Report struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Location    Location      `json:"location"`
	Timestamp   string        `json:"timestamp"`
	Status      string        `json:"status"`
	Votes       int           `json:"votes"`
	Downvotes   int           `json:"downvotes"`
	Tag         string        `json:"category,omitempty"`
	Images      []ReportImage `json:"images,omitempty"`
}

// TypedReport - отчет вместе с категорией-источником. Файлы категорий
// не хранят тип записи, он восстанавливается при чтении.
type TypedReport struct {
	Report
	Type Category `json:"type"`
}

// ReportFile - форма JSON-файла категории: {"reports": [...]}, новые сверху
type ReportFile struct {
	Reports []Report `json:"reports"`
}
