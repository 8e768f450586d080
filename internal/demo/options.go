package demo

// Option определение опции сценария.
type Option func(s *Scenario, _ scenarioOptRestriction)

type scenarioOptRestriction struct{}

// WithItems задание исходного набора записей. По умолчанию используется DefaultItems.
func WithItems(items ...Item) Option {
	return func(s *Scenario, _ scenarioOptRestriction) {
		s.items = items
	}
}

// WithSamplePosition задание позиции элемента, значение которого
// используется как образец для удаления. Равна 0 по-умолчанию.
func WithSamplePosition(pos int) Option {
	return func(s *Scenario, _ scenarioOptRestriction) {
		s.pos = pos
	}
}
