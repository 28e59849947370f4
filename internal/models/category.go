package models

import "fmt"

// Category - закрытый набор категорий гражданских обращений.
// Каждая категория хранится в собственном JSON-файле.
type Category string

const (
	CategoryIssue           Category = "issue"
	CategoryIdea            Category = "idea"
	CategoryCommunityEvent  Category = "community-event"
	CategoryGovernmentEvent Category = "government-event"
)

// CategoryInfo - единая таблица свойств категории: префикс идентификатора,
// имя файла с данными, подпись, цвет маркера и вес для тепловой карты.
type CategoryInfo struct {
	Prefix   string
	FileName string
	Label    string
	Color    string
	Weight   float64
}

// Вес issue удвоен: проблемы обозначают концентрацию неблагополучия,
// события считаются наполовину, так как они временные. Соотношение
// 2:1:0.5:0.5 фиксировано контрактом аналитики.
var categoryInfo = map[Category]CategoryInfo{
	CategoryIssue:           {Prefix: "issue", FileName: "issue.json", Label: "Issue", Color: "#ef4444", Weight: 2},
	CategoryIdea:            {Prefix: "idea", FileName: "idea.json", Label: "Idea", Color: "#3b82f6", Weight: 1},
	CategoryCommunityEvent:  {Prefix: "comm-event", FileName: "community-event.json", Label: "Community Event", Color: "#10b981", Weight: 0.5},
	CategoryGovernmentEvent: {Prefix: "gov-event", FileName: "government-event.json", Label: "Government Event", Color: "#8b5cf6", Weight: 0.5},
}

// Categories возвращает все категории в каноническом порядке.
// Порядок используется при поиске отчета по ID и при раскладке секторов
// круговой диаграммы, менять его нельзя.
func Categories() []Category {
	return []Category{CategoryIssue, CategoryIdea, CategoryCommunityEvent, CategoryGovernmentEvent}
}

// ParseCategory проверяет строку и возвращает категорию
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryInfo[c]; !ok {
		return "", fmt.Errorf("unknown report category %q", s)
	}
	return c, nil
}

// Info возвращает свойства категории
func (c Category) Info() CategoryInfo {
	return categoryInfo[c]
}

// Prefix возвращает префикс идентификатора отчета
func (c Category) Prefix() string {
	return categoryInfo[c].Prefix
}

// FileName возвращает имя JSON-файла с отчетами категории
func (c Category) FileName() string {
	return categoryInfo[c].FileName
}

// Weight возвращает вес категории в интенсивности тепловой карты
func (c Category) Weight() float64 {
	return categoryInfo[c].Weight
}

// Color возвращает цвет маркера категории
func (c Category) Color() string {
	return categoryInfo[c].Color
}

func (c Category) String() string {
	return string(c)
}
