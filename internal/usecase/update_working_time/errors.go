package update_working_time

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_working_time: invalid input data")

	// ErrWorkingTimeNotFound возвращается, когда редактируемое рабочее время не найдено
	ErrWorkingTimeNotFound = errors.New("update_working_time: working time not found")

	// ErrDuplicateWorkingTime возвращается, когда параллельный запрос занял дату сотрудника
	ErrDuplicateWorkingTime = errors.New("update_working_time: working time already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_working_time: internal error")
)
