package slotlock

import "context"

// Locker выдает эксклюзивную блокировку по ключу
// unlock идемпотентен и должен вызываться ровно после завершения критической секции
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
