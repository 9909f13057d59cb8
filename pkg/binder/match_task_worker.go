package binder

import (
	log "github.com/sirupsen/logrus"
)

func (b *Binder) startMatchTaskWorker(stopCh <-chan struct{}) {
	b.logger.Debug("Match Worker is working now")
	go func() {
		for {
			task, shutdown := b.matchTaskQueue.Get()
			if shutdown {
				b.logger.WithFields(log.Fields{"task": task}).Debug("Stop the Match worker")
				break
			}
			if err := b.processMatch(task); err != nil {
				logCtx := b.logger.WithFields(log.Fields{"task": task, "attempts": b.matchTaskQueue.Attempts(task), "error": err.Error()})
				if b.matchTaskQueue.Retry(task) {
					logCtx.Error("Failed to process Match task, retry later")
				} else {
					logCtx.Error("Failed to process Match task too many times, giving up")
				}
			} else {
				b.logger.WithFields(log.Fields{"task": task}).Debug("Completed a Match task.")
				b.matchTaskQueue.Forget(task)
			}
			b.matchTaskQueue.Done(task)
		}
	}()

	<-stopCh
	b.matchTaskQueue.Shutdown()
}

// processMatch runs a FIFO pass triggered by a pool change. Claims left
// pending are a steady state, not a task failure
func (b *Binder) processMatch(volumeName string) error {
	logCtx := b.logger.WithFields(log.Fields{"volume": volumeName})
	logCtx.Debug("Working on a Match task")

	bound := b.MatchPending()
	if bound > 0 {
		logCtx.WithField("bound", bound).Debug("Matched pending claims")
	}
	return nil
}
