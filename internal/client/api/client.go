package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/iudanet/stockflow/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает вызовы сервера, используемые клиентскими сервисами и очередью
type ClientAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Health(ctx context.Context) (*api.HealthResponse, error)

	// Мутации принимают idempotencyKey; пустой ключ заголовок не выставляет
	CreateMovement(ctx context.Context, req api.CreateMovementRequest, idempotencyKey string) (*api.Movement, error)
	ActOnApproval(ctx context.Context, approvalID string, req api.ApprovalActionRequest, idempotencyKey string) (*api.Approval, error)
	MarkNotificationRead(ctx context.Context, notificationID, idempotencyKey string) error

	ListMovements(ctx context.Context) ([]api.Movement, error)
	ListApprovals(ctx context.Context, status string) ([]api.Approval, error)
	ListNotifications(ctx context.Context) ([]api.Notification, error)
}

// TokenSource supplies the bearer token for authenticated requests
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент. tokens may be nil for anonymous calls only.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout:       30 * time.Second,
			CheckRedirect: checkRedirect,
		},
	}
}

// checkRedirect переносит Authorization и Idempotency-Key только на тот же host:port.
// На чужой host токен не уходит.
func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return fmt.Errorf("stopped after 10 redirects")
	}
	if len(via) == 0 {
		return nil
	}
	if req.URL.Host != via[0].URL.Host {
		req.Header.Del("Authorization")
		return nil
	}
	for _, h := range []string{"Authorization", api.IdempotencyKeyHeader} {
		if v := via[0].Header.Get(h); v != "" {
			req.Header.Set(h, v)
		}
	}
	return nil
}

// BaseURL returns the server URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, requestOptions{method: http.MethodPost, path: "/api/v1/auth/register", body: req}, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, requestOptions{method: http.MethodPost, path: "/api/v1/auth/login", body: req}, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, requestOptions{method: http.MethodGet, path: "/api/v1/health"}, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// CreateMovement создает перемещение материала
func (c *Client) CreateMovement(ctx context.Context, req api.CreateMovementRequest, idempotencyKey string) (*api.Movement, error) {
	var resp api.Movement
	err := c.doRequest(ctx, requestOptions{
		method:         http.MethodPost,
		path:           "/api/v1/movements",
		body:           req,
		idempotencyKey: idempotencyKey,
		auth:           true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("create movement request failed: %w", err)
	}
	return &resp, nil
}

// ListMovements возвращает перемещения текущего пользователя
func (c *Client) ListMovements(ctx context.Context) ([]api.Movement, error) {
	var resp api.MovementListResponse
	if err := c.doRequest(ctx, requestOptions{method: http.MethodGet, path: "/api/v1/movements", auth: true}, &resp); err != nil {
		return nil, fmt.Errorf("list movements request failed: %w", err)
	}
	return resp.Movements, nil
}

// ListApprovals возвращает заявки на согласование; пустой status означает все
func (c *Client) ListApprovals(ctx context.Context, status string) ([]api.Approval, error) {
	path := "/api/v1/approvals"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}

	var resp api.ApprovalListResponse
	if err := c.doRequest(ctx, requestOptions{method: http.MethodGet, path: path, auth: true}, &resp); err != nil {
		return nil, fmt.Errorf("list approvals request failed: %w", err)
	}
	return resp.Approvals, nil
}

// ActOnApproval согласует или отклоняет заявку
func (c *Client) ActOnApproval(ctx context.Context, approvalID string, req api.ApprovalActionRequest, idempotencyKey string) (*api.Approval, error) {
	var resp api.Approval
	err := c.doRequest(ctx, requestOptions{
		method:         http.MethodPost,
		path:           "/api/v1/approvals/" + url.PathEscape(approvalID) + "/act",
		body:           req,
		idempotencyKey: idempotencyKey,
		auth:           true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s approval request failed: %w", req.Action, err)
	}
	return &resp, nil
}

// ListNotifications возвращает уведомления текущего пользователя
func (c *Client) ListNotifications(ctx context.Context) ([]api.Notification, error) {
	var resp api.NotificationListResponse
	if err := c.doRequest(ctx, requestOptions{method: http.MethodGet, path: "/api/v1/notifications", auth: true}, &resp); err != nil {
		return nil, fmt.Errorf("list notifications request failed: %w", err)
	}
	return resp.Notifications, nil
}

// MarkNotificationRead отмечает уведомление прочитанным
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID, idempotencyKey string) error {
	err := c.doRequest(ctx, requestOptions{
		method:         http.MethodPost,
		path:           "/api/v1/notifications/" + url.PathEscape(notificationID) + "/read",
		idempotencyKey: idempotencyKey,
		auth:           true,
	}, nil)
	if err != nil {
		return fmt.Errorf("mark notification read request failed: %w", err)
	}
	return nil
}

type requestOptions struct {
	body           any
	method         string
	path           string
	idempotencyKey string
	auth           bool
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, opts requestOptions, result any) error {
	var bodyReader io.Reader
	if opts.body != nil {
		jsonData, err := json.Marshal(opts.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, c.baseURL+opts.path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.idempotencyKey != "" {
		req.Header.Set(api.IdempotencyKeyHeader, opts.idempotencyKey)
	}
	if opts.auth {
		if c.tokens == nil {
			return fmt.Errorf("no token source configured")
		}
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(respBody))}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			statusErr.Message = errResp.Error
			if errResp.Message != "" {
				statusErr.Message += ": " + errResp.Message
			}
		}
		return statusErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
