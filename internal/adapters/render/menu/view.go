package menu

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tasks-cli/internal/application"
	"github.com/bnema/tasks-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const timestampLayout = "2006-01-02 15:04"

var menuChoices = []string{
	"1. Add Task",
	"2. View Task List",
	"3. Complete Task",
	"4. Delete Task",
	"5. Statistics",
	"6. Task History",
	"7. Export Tasks",
	"8. Import Tasks",
	"9. Clear All Tasks",
	"0. Exit Program",
}

func Menu() string {
	return renderMenu(newStyles())
}

func renderMenu(s styles) string {
	rule := s.frame.Render(strings.Repeat("=", 40))
	lines := []string{
		rule,
		s.title.Render("          Task Management System"),
		rule,
	}

	for _, choice := range menuChoices {
		lines = append(lines, s.choice.Render(choice[:2])+s.label.Render(choice[2:]))
	}

	lines = append(lines, s.frame.Render(strings.Repeat("-", 40)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func TaskList(tasks []domain.Task) string {
	return renderTaskList(tasks, newStyles())
}

func renderTaskList(tasks []domain.Task, s styles) string {
	if len(tasks) == 0 {
		return s.empty.Render("No tasks available")
	}

	lines := []string{s.section.Render("=== Task List ===")}
	for i, task := range tasks {
		lines = append(lines, taskLine(i+1, task, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func taskLine(position int, task domain.Task, s styles) string {
	glyph := s.pending.Render("[" + task.StatusGlyph() + "]")
	if task.Completed {
		glyph = s.done.Render("[" + task.StatusGlyph() + "]")
	}

	line := fmt.Sprintf("%d. ", position) + glyph + " " + s.taskTitle.Render(task.Title)
	if task.Description != "" {
		line += s.detail.Render(" - " + task.Description)
	}
	if !task.CreatedAt.IsZero() {
		line += s.detail.Render(fmt.Sprintf(" (Created: %s)", task.CreatedAt.Format(timestampLayout)))
	}

	return line
}

func Statistics(stats application.Statistics) string {
	return renderStatistics(stats, newStyles())
}

func renderStatistics(stats application.Statistics, s styles) string {
	lines := []string{
		s.section.Render("=== Statistics ==="),
		statLine("Total tasks", fmt.Sprintf("%d", stats.Total), s),
		statLine("Completed", fmt.Sprintf("%d", stats.Completed), s),
		statLine("Pending", fmt.Sprintf("%d", stats.Pending), s),
	}

	if stats.Total > 0 {
		lines = append(lines, statLine("Completion rate", fmt.Sprintf("%.1f%%", stats.CompletionRate), s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statLine(key, value string, s styles) string {
	return s.statKey.Render(key+": ") + s.statValue.Render(value)
}

func History(tasks []domain.Task) string {
	return renderHistory(tasks, newStyles())
}

func renderHistory(tasks []domain.Task, s styles) string {
	if len(tasks) == 0 {
		return s.empty.Render("No task history available")
	}

	lines := []string{s.section.Render("=== Task History ===")}
	for i, task := range tasks {
		completed := "Not completed"
		if task.CompletedAt != nil {
			completed = task.CompletedAt.Format(timestampLayout)
		}

		entry := lipgloss.JoinVertical(
			lipgloss.Left,
			fmt.Sprintf("%d. [%s] ", i+1, task.StatusGlyph())+s.taskTitle.Render(task.Title),
			s.detail.Render("   Created: "+task.CreatedAt.Format(timestampLayout)),
			s.detail.Render("   Completed: "+completed),
			s.detail.Render("   Description: "+task.Description),
		)
		lines = append(lines, entry)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func TimeoutNotice(timeout time.Duration) string {
	s := newStyles()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.warning.Render(fmt.Sprintf("Session timeout! No activity for %s.", FormatIdlePeriod(timeout))),
		s.label.Render("Application will exit automatically..."),
	)
}

// FormatIdlePeriod renders an idle duration the way the session banner and
// timeout notice phrase it.
func FormatIdlePeriod(timeout time.Duration) string {
	if timeout >= time.Minute && timeout%time.Minute == 0 {
		minutes := int(timeout / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}

	return timeout.String()
}

func ErrorMessage(text string) string {
	return newStyles().errorMsg.Render(text)
}
