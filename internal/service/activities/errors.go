package activities

import "errors"

var (
	// ErrActivityNotFound возвращается, когда услуга не найдена
	ErrActivityNotFound = errors.New("activities: activity not found")

	// ErrActivityInUse возвращается при удалении услуги, на которую есть бронирования
	ErrActivityInUse = errors.New("activities: activity has bookings")

	// ErrDuplicateName возвращается, когда услуга с таким названием уже существует
	ErrDuplicateName = errors.New("activities: activity name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("activities: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("activities: internal error")
)
