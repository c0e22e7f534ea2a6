package create_working_time

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_working_time: invalid input data")

	// ErrDuplicateWorkingTime возвращается, когда параллельный запрос уже создал
	// рабочее время сотрудника на эту дату
	ErrDuplicateWorkingTime = errors.New("create_working_time: working time already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_working_time: internal error")
)
