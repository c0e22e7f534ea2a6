package activity

import "errors"

var (
	// ErrActivityNotFound возвращается, когда услуга не найдена
	ErrActivityNotFound = errors.New("activity.repository: activity not found")

	// ErrActivityInUse возвращается при удалении услуги, на которую есть бронирования
	ErrActivityInUse = errors.New("activity.repository: activity has bookings")

	// ErrDuplicateName возвращается, когда услуга с таким названием уже существует
	ErrDuplicateName = errors.New("activity.repository: activity name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("activity.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("activity.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("activity.repository: failed to scan row")
)
