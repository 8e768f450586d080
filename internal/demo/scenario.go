package demo

import (
	"github.com/sirkon/fwdlist"
	"github.com/sirkon/fwdlist/internal/logging"
)

//go:generate mockgen -destination internal/mocks/logger.go -package mocks -mock_names Logger=LoggerMock github.com/sirkon/fwdlist/internal/logging Logger

// Scenario сценарий демонстрации удаления по образцу: список
// заполняется записями, после чего удаляются все записи равные той,
// что находится на заданной позиции.
type Scenario struct {
	items []Item
	pos   int
	log   logging.Logger
}

// New конструктор сценария.
func New(log logging.Logger, opts ...Option) *Scenario {
	s := &Scenario{
		items: DefaultItems(),
		log:   log,
	}
	for _, opt := range opts {
		opt(s, scenarioOptRestriction{})
	}

	return s
}

// Run выполнение сценария с возвратом итогового списка.
func (s *Scenario) Run() *fwdlist.List[Item] {
	l := fwdlist.New(s.items...)
	s.log.ListStart(l.String())

	it := l.Begin()
	for i := 0; i < s.pos && !it.AtEnd(); i++ {
		it.Next()
	}

	if it.AtEnd() || s.pos < 0 {
		s.log.ListSampleMissing(s.pos)
	} else {
		sample := it.Value()
		removed := l.RemoveAt(it)
		s.log.ListSampleRemoved(sample.String(), removed)
	}

	s.log.ListAfter(l.String())
	return l
}
