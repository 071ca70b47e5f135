package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	digestHeader       = "📋 タスクリマインダー"
	digestEmpty        = "リマインド対象のタスクはありません"
	headingOverdue     = "⏰ 期限切れ"
	headingDueToday    = "📅 今日が期日"
	headingDueTomorrow = "🔔 明日が期日"
)

// BuildDigest composes the reminder message for tasks due around today.
// Only overdue, due-today and due-tomorrow tasks are listed; later and
// undated tasks are left out entirely. The bucketing is deliberately
// narrower than Classify, which also reports upcoming for display.
// The bool reports whether any task made it into the digest.
func BuildDigest(tasks []Task, today time.Time) (string, bool) {
	day := today.Format(dueLayout)
	nextDay := today.AddDate(0, 0, 1).Format(dueLayout)

	var overdue, dueToday, dueTomorrow []Task
	for _, t := range tasks {
		if _, ok := ParseDue(t.Due); !ok {
			continue
		}
		switch {
		case t.Due < day:
			overdue = append(overdue, t)
		case t.Due == day:
			dueToday = append(dueToday, t)
		case t.Due == nextDay:
			dueTomorrow = append(dueTomorrow, t)
		}
	}

	if len(overdue)+len(dueToday)+len(dueTomorrow) == 0 {
		return digestEmpty, false
	}

	var b strings.Builder
	b.WriteString(digestHeader)
	writeBucket(&b, headingOverdue, overdue)
	writeBucket(&b, headingDueToday, dueToday)
	writeBucket(&b, headingDueTomorrow, dueTomorrow)
	return b.String(), true
}

func writeBucket(b *strings.Builder, heading string, tasks []Task) {
	if len(tasks) == 0 {
		return
	}
	b.WriteString("\n\n")
	b.WriteString(heading)
	for _, t := range tasks {
		b.WriteString("\n")
		b.WriteString(digestLine(t))
	}
}

func digestLine(t Task) string {
	due := t.Due
	if due == "" {
		due = "-"
	}
	tags := t.Tags
	if tags == "" {
		tags = "-"
	}
	return fmt.Sprintf("- %s（期日: %s / タグ: %s）", t.Title, due, tags)
}
