package schedulingservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
)

const (
	integrationName = "scheduling_service"

	// videoLinkEventType тип события, для которого комнаты оборудованы видеосвязью
	videoLinkEventType = "VIDE"
)

// Client клиент для работы с системой расписаний тюрем
type Client struct {
	baseURL        string
	httpClient     *http.Client
	maxConcurrency int
	log            Logger
	metrics        MetricsCollector
}

// NewClient создает новый экземпляр клиента системы расписаний.
// maxConcurrency ограничивает число параллельных запросов при загрузке расписаний нескольких комнат.
func NewClient(baseURL string, timeout time.Duration, maxConcurrency int, log Logger, metrics MetricsCollector) *Client {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxConcurrency: maxConcurrency,
		log:            log,
		metrics:        metrics,
	}
}

// GetScheduledAppointments получает назначения в комнате на дату
func (c *Client) GetScheduledAppointments(ctx context.Context, agencyID string, date time.Time, roomID int64) (appointments []ScheduledAppointment, err error) {
	defer c.observe("get_scheduled_appointments", time.Now(), &err)

	endpoint := fmt.Sprintf("%s/api/schedules/%s/locations/%d/appointments?date=%s",
		c.baseURL, url.PathEscape(agencyID), roomID, date.Format(domain.DateFormat))

	if err = c.getJSON(ctx, endpoint, &appointments); err != nil {
		return nil, err
	}

	return appointments, nil
}

// GetScheduledAppointmentsForRooms получает назначения во всех комнатах параллельно.
// Порядок результата: комнаты в порядке roomIDs, внутри комнаты порядок ответа сервиса.
func (c *Client) GetScheduledAppointmentsForRooms(ctx context.Context, agencyID string, date time.Time, roomIDs []int64) ([]ScheduledAppointment, error) {
	perRoom := make([][]ScheduledAppointment, len(roomIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)

	for i, roomID := range roomIDs {
		g.Go(func() error {
			appointments, err := c.GetScheduledAppointments(gctx, agencyID, date, roomID)
			if err != nil {
				return fmt.Errorf("room_id=%d: %w", roomID, err)
			}
			perRoom[i] = appointments
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, appointments := range perRoom {
		total += len(appointments)
	}
	result := make([]ScheduledAppointment, 0, total)
	for _, appointments := range perRoom {
		result = append(result, appointments...)
	}

	c.log.Info("GetScheduledAppointmentsForRooms: loaded agency_id=%s, date=%s, rooms=%d, appointments=%d",
		agencyID, date.Format(domain.DateFormat), len(roomIDs), total)

	return result, nil
}

// GetVideoLinkRooms получает комнаты учреждения, оборудованные для видеосвязи
func (c *Client) GetVideoLinkRooms(ctx context.Context, agencyID string) (rooms []Location, err error) {
	defer c.observe("get_video_link_rooms", time.Now(), &err)

	endpoint := fmt.Sprintf("%s/api/agencies/%s/locations?eventType=%s",
		c.baseURL, url.PathEscape(agencyID), videoLinkEventType)

	if err = c.getJSON(ctx, endpoint, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrAgencyNotFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, readError(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func readError(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.UserMessage != "" {
		return errResp.UserMessage
	}
	return string(raw)
}

func (c *Client) observe(operation string, start time.Time, err *error) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveIntegration(integrationName, operation, *err, time.Since(start))
}
