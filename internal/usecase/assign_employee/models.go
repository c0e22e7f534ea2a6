package assign_employee

// Request модель запроса на назначение сотрудника на бронирования
type Request struct {
	EmployeeID int64
	BookingIDs []int64
}

// Response модель ответа
type Response struct {
	EmployeeID int64
	BookingIDs []int64 // назначенные бронирования в порядке запроса
}
