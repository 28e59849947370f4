package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/civicmap/civic-reports/internal/models"
)

// SentimentAnalysis - результат анализа настроений по городу
type SentimentAnalysis struct {
	Overall     string   `json:"overall"`
	Issues      string   `json:"issues"`
	Ideas       string   `json:"ideas"`
	Events      string   `json:"events"`
	KeyInsights []string `json:"keyInsights"`
}

// Digest - числовая сводка отчетов, из которой строится промпт и
// детерминированные шаблонные ответы. Считается заранее, чтобы фолбэк
// не зависел от внешнего API.
type Digest struct {
	TotalReports         int
	IssueCount           int
	IdeaCount            int
	CommunityEventCount  int
	GovernmentEventCount int
	// TopIssues - до пяти описаний проблем с наибольшим числом голосов,
	// обрезанных до 100 символов
	TopIssues []string
	// IssueTags - распределение проблем по свободным тематическим меткам
	IssueTags map[string]int
	// TopIssueTag - первая встреченная метка в порядке обхода отчетов
	TopIssueTag  string
	AvgIssueVote float64
	AvgIdeaVote  float64
}

// BuildDigest собирает сводку по всем отчетам
func BuildDigest(reports []models.TypedReport) Digest {
	d := Digest{
		TotalReports: len(reports),
		IssueTags:    make(map[string]int),
	}

	var issues []models.TypedReport
	var issueVotes, ideaVotes int
	for _, r := range reports {
		switch r.Type {
		case models.CategoryIssue:
			d.IssueCount++
			issueVotes += r.Votes
			issues = append(issues, r)
			if r.Tag != "" {
				if d.TopIssueTag == "" {
					d.TopIssueTag = r.Tag
				}
				d.IssueTags[r.Tag]++
			}
		case models.CategoryIdea:
			d.IdeaCount++
			ideaVotes += r.Votes
		case models.CategoryCommunityEvent:
			d.CommunityEventCount++
		case models.CategoryGovernmentEvent:
			d.GovernmentEventCount++
		}
	}

	if d.IssueCount > 0 {
		d.AvgIssueVote = float64(issueVotes) / float64(d.IssueCount)
	}
	if d.IdeaCount > 0 {
		d.AvgIdeaVote = float64(ideaVotes) / float64(d.IdeaCount)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Votes > issues[j].Votes
	})
	for i := 0; i < len(issues) && i < 5; i++ {
		desc := issues[i].Description
		if len(desc) > 100 {
			desc = desc[:100]
		}
		d.TopIssues = append(d.TopIssues, desc)
	}

	return d
}

const sentimentSystemPrompt = "You are a civic analytics expert. Analyze city health and community engagement data. " +
	"Provide clear, actionable insights about the city's wellbeing, citizen engagement, and areas needing attention. " +
	"Be professional, balanced, and data-driven."

// buildSentimentPrompt формирует пользовательское сообщение с данными
func buildSentimentPrompt(d Digest) string {
	var sb strings.Builder

	sb.WriteString("Analyze this civic data and provide a comprehensive sentiment analysis:\n\n")
	sb.WriteString("CIVIC DATA SUMMARY:\n")
	fmt.Fprintf(&sb, "Total Reports: %d\n", d.TotalReports)
	fmt.Fprintf(&sb, "- Issues: %d (Problems/Concerns)\n", d.IssueCount)
	fmt.Fprintf(&sb, "- Ideas: %d (Improvement Suggestions)\n", d.IdeaCount)
	fmt.Fprintf(&sb, "- Community Events: %d (Community Activities)\n", d.CommunityEventCount)
	fmt.Fprintf(&sb, "- Government Events: %d (Official Events)\n", d.GovernmentEventCount)

	sb.WriteString("\nTOP ISSUES BY COMMUNITY VOTES:\n")
	for i, desc := range d.TopIssues {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, desc)
	}

	sb.WriteString("\nISSUE CATEGORIES:\n")
	tags := make([]string, 0, len(d.IssueTags))
	for tag := range d.IssueTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(&sb, "- %s: %d\n", tag, d.IssueTags[tag])
	}

	sb.WriteString("\nAVERAGE ENGAGEMENT:\n")
	fmt.Fprintf(&sb, "- Average votes per issue: %.1f\n", d.AvgIssueVote)
	fmt.Fprintf(&sb, "- Average votes per idea: %.1f\n", d.AvgIdeaVote)

	sb.WriteString(`
Please provide:
1. OVERALL CITY SENTIMENT (2-3 sentences): Overall assessment of city health and civic engagement
2. ISSUES ANALYSIS (2-3 sentences): What the reported problems indicate about city infrastructure and services
3. IDEAS ANALYSIS (2-3 sentences): What improvement suggestions reveal about community engagement and innovation
4. EVENTS ANALYSIS (2-3 sentences): What community and government events show about civic participation
5. KEY INSIGHTS (3-5 bullet points): Most important takeaways and recommendations

Format your response as a JSON object with keys: overall, issues, ideas, events, keyInsights (array)`)

	return sb.String()
}

// buildSummaryPrompt формирует запрос на сводку правительственного документа
func buildSummaryPrompt(title, reportType, relatedContext, pdfBase64 string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are analyzing a government report document titled %q. ", title)
	sb.WriteString("Please provide a concise 2-3 paragraph summary of the key points, findings, and recommendations in this document. ")
	sb.WriteString("Focus on the most important information that citizens need to know.\n\n")
	fmt.Fprintf(&sb, "The document is related to a %s report.", reportType)
	if relatedContext != "" {
		sb.WriteString(relatedContext)
		sb.WriteString("\nThis government report is a response to or update on the related citizen report mentioned above. ")
		sb.WriteString("Make sure to reference the specific location, report ID, and issue details in your summary to provide context.")
	}
	sb.WriteString("\n\nPlease provide a clear, accessible summary suitable for public announcements. ")
	sb.WriteString("If there is related report context, mention the specific report ID and location in your summary.\n\n")
	sb.WriteString("Document content (base64-encoded PDF):\n")
	sb.WriteString(pdfBase64)

	return sb.String()
}
