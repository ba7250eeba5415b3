package logger

// NewNop возвращает логгер, который ничего не пишет. Удобен в тестах,
// где вывод логов не проверяется.
func NewNop() Logger {
	return nop{}
}

type nop struct{}

func (nop) Debug(string, ...Field) {}
func (nop) Info(string, ...Field)  {}
func (nop) Warn(string, ...Field)  {}
func (nop) Error(string, ...Field) {}

func (n nop) With(...Field) Logger { return n }
