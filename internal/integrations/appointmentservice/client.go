package appointmentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с AppointmentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AppointmentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBookedWindows получает занятые окна доктора
// Записи с неразбираемой датой пропускаются
func (c *Client) GetBookedWindows(ctx context.Context, doctorID string) ([]domain.BookedWindow, error) {
	url := fmt.Sprintf("%s/api/doctor/unavailable-slots/%s", c.baseURL, doctorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrDoctorNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload unavailableSlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	windows := make([]domain.BookedWindow, 0, len(payload.UnavailableSlots))
	for _, slot := range payload.UnavailableSlots {
		date, err := types.NewDateStampFromString(slot.Date)
		if err != nil {
			c.log.Warn("appointmentservice: skipping booked window with malformed date %q for doctor=%s", slot.Date, doctorID)
			continue
		}
		windows = append(windows, domain.BookedWindow{Date: date, TimeSlot: slot.Time})
	}

	return windows, nil
}

// GetBookedWindowsWithGracefulDegradation получает занятые окна с graceful degradation
// При недоступности сервиса возвращает ErrServiceDegraded: показать пациенту чуть
// более оптимистичную доступность лучше, чем заблокировать выбор даты целиком.
// Решение работать с пустым списком принимает вызывающий - деградация явная
func (c *Client) GetBookedWindowsWithGracefulDegradation(ctx context.Context, doctorID string) ([]domain.BookedWindow, error) {
	windows, err := c.GetBookedWindows(ctx, doctorID)
	if err != nil {
		if err == ErrDoctorNotFound {
			return nil, err
		}

		c.log.Error("AppointmentService unavailable, applying graceful degradation for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: doctor=%s, error=%v", ErrServiceDegraded, doctorID, err)
	}

	return windows, nil
}

// CreateAppointment отправляет запрос на создание записи
// При отказе сервиса возвращает RejectionError с дословным сообщением
func (c *Client) CreateAppointment(ctx context.Context, request *NewAppointmentRequest) (*domain.Appointment, error) {
	url := fmt.Sprintf("%s/api/appointment/new", c.baseURL)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		var rejection appointmentResponse
		if err := json.NewDecoder(resp.Body).Decode(&rejection); err == nil && rejection.Message != "" {
			return nil, &RejectionError{Message: rejection.Message}
		}
		return nil, &RejectionError{Message: ""}
	case http.StatusNotFound:
		return nil, ErrDoctorNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var payload appointmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !payload.Success || payload.Appointment == nil {
		return nil, fmt.Errorf("%w: empty appointment payload", ErrInvalidResponse)
	}

	appointment, err := payload.Appointment.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed appointment payload: %v", ErrInvalidResponse, err)
	}

	return appointment, nil
}

// ListAppointments получает историю записей пациента постранично
func (c *Client) ListAppointments(ctx context.Context, page, limit int) ([]*domain.Appointment, *Pagination, error) {
	url := fmt.Sprintf("%s/api/appointment/all?page=%d&limit=%d", c.baseURL, page, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload appointmentsListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	appointments := make([]*domain.Appointment, 0, len(payload.Appointments))
	for i := range payload.Appointments {
		appointment, err := payload.Appointments[i].toDomain()
		if err != nil {
			c.log.Warn("appointmentservice: skipping malformed appointment in listing: %v", err)
			continue
		}
		appointments = append(appointments, appointment)
	}

	return appointments, &payload.Pagination, nil
}
