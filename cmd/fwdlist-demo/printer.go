package main

import (
	"github.com/sirkon/fwdlist/internal/logging"
	"github.com/sirkon/message"
)

// printer вывод событий сценария в консоль.
type printer struct{}

func (printer) ListStart(list string) {
	message.Infof("Start:  %s", list)
}

func (printer) ListSampleRemoved(sample string, removed bool) {
	if !removed {
		message.Infof("nothing equal to %s was found", sample)
		return
	}

	message.Infof("removed every item equal to %s", sample)
}

func (printer) ListSampleMissing(pos int) {
	message.Infof("no item at position %d, nothing to remove", pos)
}

func (printer) ListAfter(list string) {
	message.Infof("After:  %s", list)
}

var _ logging.Logger = printer{}
