package slotlock

import "errors"

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось получить за отведенное время
	ErrLockTimeout = errors.New("slotlock: timed out waiting for lock")

	// ErrLockBackend возвращается при ошибках хранилища блокировок
	ErrLockBackend = errors.New("slotlock: backend error")

	// ErrUnknownDriver возвращается для неизвестного драйвера в конфигурации
	ErrUnknownDriver = errors.New("slotlock: unknown driver")
)
