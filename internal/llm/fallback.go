package llm

import "fmt"

// FallbackSentiment строит детерминированный анализ из уже посчитанной
// сводки. Используется при любой ошибке внешнего API: некорректный
// ответ модели никогда не доходит до конечного пользователя.
func FallbackSentiment(d Digest) *SentimentAnalysis {
	eventCount := d.CommunityEventCount + d.GovernmentEventCount

	topTag := d.TopIssueTag
	if topTag == "" {
		topTag = "infrastructure"
	}

	return &SentimentAnalysis{
		Overall: fmt.Sprintf(
			"The city has %d total civic reports indicating active community engagement across issues, ideas, and events.",
			d.TotalReports),
		Issues: fmt.Sprintf(
			"%d issues have been reported, indicating areas requiring civic attention and infrastructure improvements.",
			d.IssueCount),
		Ideas: fmt.Sprintf(
			"%d community ideas have been submitted, showing citizens are actively engaged in proposing solutions and improvements.",
			d.IdeaCount),
		Events: fmt.Sprintf(
			"%d events demonstrate civic participation and community organizing efforts throughout the city.",
			eventCount),
		KeyInsights: []string{
			fmt.Sprintf("%d total issues reported, with %s being most mentioned", d.IssueCount, topTag),
			fmt.Sprintf("%d improvement ideas submitted by the community", d.IdeaCount),
			fmt.Sprintf("%d civic events organized", eventCount),
			"Active community participation evident across all report types",
		},
	}
}

// EmptySentiment - форма ответа при полном отсутствии данных
func EmptySentiment() *SentimentAnalysis {
	return &SentimentAnalysis{
		Overall:     "No data available for analysis.",
		Issues:      "No issues reported.",
		Ideas:       "No ideas submitted.",
		Events:      "No events recorded.",
		KeyInsights: []string{},
	}
}

// FallbackSummary - шаблонная сводка анонса при отказе внешнего API
func FallbackSummary(title, reportType string) string {
	return fmt.Sprintf(
		"The government has published a new document titled %q related to a %s report. "+
			"The full document is attached to this announcement; an automated summary is temporarily unavailable.",
		title, reportType)
}
