package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

const maxBodyBytes = 1 << 20

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse тело ответа 422: поле -> сообщения
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// ParseIDVar извлекает положительный int64 из переменной пути
func ParseIDVar(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("path variable %q is missing", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return id, nil
}

// RespondJSON пишет payload со статусом status
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondRejection пишет отказ валидации расписания как 422 {"errors": {"<field>": ["<message>"]}}
func RespondRejection(w http.ResponseWriter, rejection *scheduling.RejectionError) {
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Errors: map[string][]string{
			rejection.Field: {RejectionMessage(rejection)},
		},
	})
}

// RejectionMessage сообщение для пользователя по виду отказа
func RejectionMessage(rejection *scheduling.RejectionError) string {
	switch {
	case errors.Is(rejection, scheduling.ErrReferenceNotFound):
		return "запись не найдена"
	case errors.Is(rejection, scheduling.ErrMalformedInput):
		switch rejection.Field {
		case scheduling.FieldDate:
			return "некорректный формат даты, ожидается YYYY-MM-DD"
		default:
			return "некорректный формат времени, ожидается HH:MM"
		}
	case errors.Is(rejection, scheduling.ErrInvalidRange):
		return "время начала должно быть раньше времени окончания"
	case errors.Is(rejection, scheduling.ErrInvalidDuration):
		return "услуга должна закончиться до конца дня"
	case errors.Is(rejection, scheduling.ErrEmployeeUnavailable):
		return "сотрудник не работает или занят в это время"
	case errors.Is(rejection, scheduling.ErrCustomerDoubleBooked):
		return "у клиента уже есть бронирование на это время"
	case errors.Is(rejection, scheduling.ErrOutOfSchedulingWindow):
		return "рабочее время можно задавать только на недели следующего месяца"
	case errors.Is(rejection, scheduling.ErrDuplicateWorkingTime):
		return "у сотрудника уже есть рабочее время на эту дату"
	default:
		return "некорректные данные"
	}
}
