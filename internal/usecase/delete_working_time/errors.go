package delete_working_time

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_working_time: invalid input data")

	// ErrWorkingTimeNotFound возвращается, когда рабочее время не найдено
	ErrWorkingTimeNotFound = errors.New("delete_working_time: working time not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_working_time: internal error")
)
