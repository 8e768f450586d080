package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// ListStart исходное содержимое списка.
	ListStart(list string)
	// ListSampleRemoved удаление всех элементов равных образцу.
	ListSampleRemoved(sample string, removed bool)
	// ListSampleMissing образца на данной позиции нет, список короче.
	ListSampleMissing(pos int)
	// ListAfter содержимое списка после удаления.
	ListAfter(list string)
}
