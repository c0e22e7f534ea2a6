package assign_employee

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_employee: invalid input data")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("assign_employee: employee not found")

	// ErrBookingNotFound возвращается, когда одно из бронирований не найдено
	ErrBookingNotFound = errors.New("assign_employee: booking not found")

	// ErrSlotNotAvailable возвращается, когда параллельный запрос занял интервал сотрудника
	ErrSlotNotAvailable = errors.New("assign_employee: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_employee: internal error")
)
