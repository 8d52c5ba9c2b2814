package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	pb "github.com/godilite/mbti-server/api/v1"
)

const barWidth = 20

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	typeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1).Border(lipgloss.RoundedBorder())
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	barFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// dimensionPairs lists the opposing letters in display order.
var dimensionPairs = [4][2]string{{"E", "I"}, {"S", "N"}, {"T", "F"}, {"J", "P"}}

func bar(pct int) string {
	filled := pct * barWidth / 100
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
}

func renderQuestions(w io.Writer, questions []*pb.Question) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d questions", len(questions))))
	for _, q := range questions {
		fmt.Fprintf(w, "%3d  %s  %s\n", q.ID, mutedStyle.Render("["+q.Dimension+"]"), q.Text)
	}
}

func renderAnswers(w io.Writer, answers []*pb.Answer) {
	if len(answers) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no answers yet"))
		return
	}
	for _, a := range answers {
		fmt.Fprintf(w, "question %3d  value %d  %s\n", a.QuestionID, a.Value, mutedStyle.Render(a.AnsweredAt.Format("2006-01-02 15:04:05")))
	}
}

func renderList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, labelStyle.Render(title))
	for _, item := range items {
		fmt.Fprintf(w, "  • %s\n", item)
	}
}

func renderProfile(w io.Writer, p *pb.TypeProfileResponse) {
	fmt.Fprintln(w, typeStyle.Render(p.TypeCode))
	fmt.Fprintln(w, p.Description)
	fmt.Fprintln(w)
	renderList(w, "Strengths", p.Strengths)
	renderList(w, "Challenges", p.Challenges)
	renderList(w, "Recommendations", p.Recommendations)
}

func renderResult(w io.Writer, r *pb.AssessmentResult) {
	fmt.Fprintln(w, typeStyle.Render(r.TypeCode))
	fmt.Fprintln(w, r.Description)
	fmt.Fprintln(w)

	for _, pair := range dimensionPairs {
		first, second := pair[0], pair[1]
		fmt.Fprintf(w, "%s %3d%% %s  %s %3d%% %s\n",
			labelStyle.Render(first), r.Percentages[first], bar(r.Percentages[first]),
			labelStyle.Render(second), r.Percentages[second], bar(r.Percentages[second]))
	}
	fmt.Fprintln(w)

	renderList(w, "Strengths", r.Strengths)
	renderList(w, "Challenges", r.Challenges)
	renderList(w, "Recommendations", r.Recommendations)

	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("result %s  completed %s", r.ID, r.CompletedAt.Format("2006-01-02 15:04"))))
}

func renderHistory(w io.Writer, results []*pb.AssessmentResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no results"))
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s  %s  %s\n", r.CompletedAt.Format("2006-01-02 15:04"), labelStyle.Render(r.TypeCode), mutedStyle.Render(r.ID))
	}
}
