package working_time

import "errors"

var (
	// ErrWorkingTimeNotFound возвращается, когда рабочее время не найдено
	ErrWorkingTimeNotFound = errors.New("working_time.repository: working time not found")

	// ErrDuplicateWorkingTime возвращается, когда у сотрудника уже есть рабочее время на дату
	ErrDuplicateWorkingTime = errors.New("working_time.repository: duplicate working time for employee and date")

	// ErrReferenceViolation возвращается, когда сотрудник не существует
	ErrReferenceViolation = errors.New("working_time.repository: employee does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("working_time.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("working_time.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("working_time.repository: failed to scan row")
)
