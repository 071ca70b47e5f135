package domain

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Notifier delivers a composed digest message. Implementations report
// delivery as a bool and never return an error.
type Notifier interface {
	Send(ctx context.Context, text string) bool
}

// ReminderJob scans the sheet and posts a due-date digest to the
// notifier. Safe to run repeatedly: nothing marks tasks as already
// notified, so two runs over unchanged data produce the same message.
type ReminderJob struct {
	store    RowStore
	notifier Notifier
	log      *log.Logger
}

func NewReminderJob(store RowStore, notifier Notifier, logger *log.Logger) *ReminderJob {
	return &ReminderJob{store: store, notifier: notifier, log: logger}
}

// Run builds the digest for today and hands it to the notifier. A digest
// is sent even when no task qualifies ("nothing to remind"). The return
// reports whether the notifier delivered the message.
func (j *ReminderJob) Run(ctx context.Context) bool {
	rows, err := j.store.ReadRows(ctx)
	if err != nil {
		j.log.WithError(err).Error("reminder digest read failed")
		return false
	}
	tasks := TasksFromRows(rows)
	msg, matched := BuildDigest(tasks, time.Now())
	sent := j.notifier.Send(ctx, msg)
	j.log.WithFields(log.Fields{"tasks": len(tasks), "matched": matched, "sent": sent}).Info("reminder digest run")
	return sent
}
