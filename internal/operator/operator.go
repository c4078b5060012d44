package operator

import (
	"context"
	"reflect"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/gst-server/internal/metrics"
	"github.com/carson-networks/gst-server/internal/operator/actions"
	"github.com/carson-networks/gst-server/internal/storage"
)

// WriteOpener begins a storage write unit. *storage.Storage implements it.
type WriteOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is a worker that runs queued actions one at a time, each inside
// its own database transaction.
type Operator struct {
	storage WriteOpener
	queue   chan ActionItem
}

func NewOperator(s WriteOpener, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run processes items until the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		metrics.OperatorQueueDepth.Set(float64(len(o.queue)))
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	name := actionName(item.action)
	if err := item.ctx.Err(); err != nil {
		metrics.RecordWrite(name, metrics.WriteAbandoned, 0)
		return err
	}

	start := time.Now()
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		metrics.RecordWrite(name, metrics.WriteFailed, time.Since(start))
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rollbackErr := writer.Rollback(); rollbackErr != nil {
			logrus.WithError(rollbackErr).WithField("action", name).Error("Operator.processItem.Rollback")
		}
		metrics.RecordWrite(name, metrics.WriteRolledBack, time.Since(start))
		return err
	}

	if err = writer.Commit(); err != nil {
		metrics.RecordWrite(name, metrics.WriteFailed, time.Since(start))
		return err
	}

	metrics.RecordWrite(name, metrics.WriteCommitted, time.Since(start))
	return nil
}

// actionName is the action's type name, e.g. "CreateTransaction".
func actionName(action actions.IAction) string {
	t := reflect.TypeOf(action)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
