package tlog

// TestingPrinter подмножество методов *testing.T используемое для вывода.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}
