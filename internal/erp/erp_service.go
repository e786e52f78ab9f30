package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=erp_service.go -destination=../mock/erp/erp_service_mock.go -package=mock
type Service interface {
	GetItems(ctx context.Context, cardCode string, page int, query string) ([]Item, error)
	GetItem(ctx context.Context, cardCode string, itemCode string) (Item, error)
	GetShops(ctx context.Context) ([]Shop, error)
	SubmitOrder(ctx context.Context, invoice Invoice) (Order, error)
	GetOrders(ctx context.Context, cardCode string, activeOnly bool) ([]Order, error)
	GetOrder(ctx context.Context, docEntry int) (Order, error)
	GetUser(ctx context.Context, cardCode string) (User, error)
	GetHistory(ctx context.Context, cardCode string) ([]Order, error)
	SendFeedback(ctx context.Context, fb Feedback) error
}

type service struct {
	baseURL  string
	username string
	password string
	client   *http.Client
	logger   *zap.Logger

	mu      sync.Mutex
	session string
}

func NewService(logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		baseURL:  os.Getenv("ERP_BASE_URL"),
		username: os.Getenv("ERP_USERNAME"),
		password: os.Getenv("ERP_PASSWORD"),
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
		logger: logger,
	}
}

// ========================
// session handling
// ========================

func (s *service) login(ctx context.Context) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"UserName": s.username,
		"Password": s.password,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/Login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("erp login request failed", zap.Error(err))
		return "", ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	var out struct {
		envelope
		Data struct {
			SessionID string `json:"sessionId"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", ErrLoginFailed
	}
	if out.Status != "success" || out.Data.SessionID == "" {
		return "", ErrLoginFailed
	}

	return out.Data.SessionID, nil
}

func (s *service) sessionCookie(ctx context.Context, force bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != "" && !force {
		return s.session, nil
	}

	sess, err := s.login(ctx)
	if err != nil {
		return "", err
	}
	s.session = sess
	return sess, nil
}

// do mengirim request dengan session cookie; relogin sekali kalau 401.
func (s *service) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	for attempt := 0; attempt < 2; attempt++ {
		sess, err := s.sessionCookie(ctx, attempt > 0)
		if err != nil {
			return err
		}

		fullURL := s.baseURL + path
		if len(query) > 0 {
			fullURL += "?" + query.Encode()
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Cookie", sess)

		resp, err := s.client.Do(req)
		if err != nil {
			s.logger.Error("erp request failed",
				zap.String("path", path),
				zap.Error(err),
			)
			return ErrUpstreamUnavailable
		}

		if resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close()
			continue // session basi, relogin
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode erp response %s: %w", path, err)
		}
		return nil
	}

	return ErrLoginFailed
}

// ========================
// catalog
// ========================

func (s *service) GetItems(ctx context.Context, cardCode string, page int, query string) ([]Item, error) {
	q := url.Values{}
	q.Set("cardCode", cardCode)
	q.Set("page", strconv.Itoa(page))
	if query != "" {
		q.Set("q", query)
	}

	var out struct {
		envelope
		Data []Item `json:"data"`
	}
	if err := s.do(ctx, http.MethodGet, "/Items", q, nil, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" {
		return nil, upstreamError(out.Error)
	}
	return out.Data, nil
}

func (s *service) GetItem(ctx context.Context, cardCode string, itemCode string) (Item, error) {
	items, err := s.GetItems(ctx, cardCode, 1, itemCode)
	if err != nil {
		return Item{}, err
	}
	for _, it := range items {
		if it.ItemCode == itemCode {
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// ========================
// shops & orders
// ========================

func (s *service) GetShops(ctx context.Context) ([]Shop, error) {
	var out struct {
		envelope
		Data []Shop `json:"data"`
	}
	if err := s.do(ctx, http.MethodGet, "/Shops", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" {
		return nil, upstreamError(out.Error)
	}
	return out.Data, nil
}

func (s *service) SubmitOrder(ctx context.Context, invoice Invoice) (Order, error) {
	var out struct {
		envelope
		Data Order `json:"data"`
	}
	if err := s.do(ctx, http.MethodPost, "/Orders", nil, invoice, &out); err != nil {
		return Order{}, err
	}
	if out.Status != "success" {
		return Order{}, upstreamError(out.Error)
	}
	return out.Data, nil
}

func (s *service) GetOrders(ctx context.Context, cardCode string, activeOnly bool) ([]Order, error) {
	q := url.Values{}
	q.Set("cardCode", cardCode)
	if activeOnly {
		q.Set("isActive", "true")
	}

	var out struct {
		envelope
		Data []Order `json:"data"`
	}
	if err := s.do(ctx, http.MethodGet, "/Orders", q, nil, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" {
		return nil, upstreamError(out.Error)
	}
	return out.Data, nil
}

func (s *service) GetOrder(ctx context.Context, docEntry int) (Order, error) {
	var out struct {
		envelope
		Data Order `json:"data"`
	}
	if err := s.do(ctx, http.MethodGet, "/Orders/"+strconv.Itoa(docEntry), nil, nil, &out); err != nil {
		return Order{}, err
	}
	if out.Status != "success" {
		if out.Error != nil && out.Error.Code == "404" {
			return Order{}, ErrOrderNotFound
		}
		return Order{}, upstreamError(out.Error)
	}
	return out.Data, nil
}

// ========================
// loyalty user
// ========================

func (s *service) GetUser(ctx context.Context, cardCode string) (User, error) {
	var out struct {
		envelope
		Data User `json:"data"`
	}
	if err := s.do(ctx, http.MethodGet, "/CashbackUsers/"+url.PathEscape(cardCode), nil, nil, &out); err != nil {
		return User{}, err
	}
	if out.Status != "success" {
		if out.Error != nil && out.Error.Code == "404" {
			return User{}, ErrUserNotFound
		}
		return User{}, upstreamError(out.Error)
	}
	return out.Data, nil
}

func (s *service) GetHistory(ctx context.Context, cardCode string) ([]Order, error) {
	var out struct {
		envelope
		Data []Order `json:"data"`
	}
	if err := s.do(ctx, http.MethodGet, "/CashbackUsers/History/"+url.PathEscape(cardCode), nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" {
		return nil, upstreamError(out.Error)
	}
	return out.Data, nil
}

func (s *service) SendFeedback(ctx context.Context, fb Feedback) error {
	var out struct {
		envelope
		Data json.RawMessage `json:"data"`
	}
	if err := s.do(ctx, http.MethodPost, "/Feedback", nil, fb, &out); err != nil {
		return err
	}
	if out.Status != "success" {
		return upstreamError(out.Error)
	}
	return nil
}

func upstreamError(e *ErrorBody) error {
	if e == nil || e.Message == "" {
		return ErrUpstreamRejected
	}
	return fmt.Errorf("%w: %s", ErrUpstreamRejected, e.Message)
}
