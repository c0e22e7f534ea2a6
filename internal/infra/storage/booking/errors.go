package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с другим бронированием
	// сотрудника или клиента (ограничение исключения в БД)
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrReferenceViolation возвращается, когда клиент, сотрудник или услуга не существуют
	ErrReferenceViolation = errors.New("booking.repository: referenced record does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
