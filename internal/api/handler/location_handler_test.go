package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/timekeep/attendance-system/internal/core/domain"
)

type stubLocationService struct {
	addFn      func(ctx context.Context, code string) error
	isValidFn  func(ctx context.Context, code string) (bool, error)
	encodeQRFn func(ctx context.Context, code string) (string, error)
}

func (s *stubLocationService) Add(ctx context.Context, code string) error {
	return s.addFn(ctx, code)
}

func (s *stubLocationService) IsValid(ctx context.Context, code string) (bool, error) {
	return s.isValidFn(ctx, code)
}

func (s *stubLocationService) EncodeQR(ctx context.Context, code string) (string, error) {
	return s.encodeQRFn(ctx, code)
}

func TestLocationHandler_Add_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	added := ""
	stub := &stubLocationService{
		addFn: func(ctx context.Context, code string) error {
			added = code
			return nil
		},
	}
	handler := NewLocationHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/locations", strings.NewReader(`{"code":"QUAN03"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if added != "QUAN03" {
		t.Fatalf("expected QUAN03 added, got %q", added)
	}
}

func TestLocationHandler_Add_MissingCode(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubLocationService{
		addFn: func(ctx context.Context, code string) error {
			t.Fatalf("service must not be called without a code")
			return nil
		},
	}
	handler := NewLocationHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/locations", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Add(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func qrContext(e *echo.Echo, code string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/qrcode/:location_code")
	c.SetParamNames("location_code")
	c.SetParamValues(code)
	return c, rec
}

func TestLocationHandler_QRCode_Success(t *testing.T) {
	e := echo.New()
	stub := &stubLocationService{
		encodeQRFn: func(ctx context.Context, code string) (string, error) {
			if code != "QUAN01" {
				t.Fatalf("unexpected code: %s", code)
			}
			return "data:image/png;base64,abc123", nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := qrContext(e, "QUAN01")
	if err := handler.QRCode(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<img src="data:image/png;base64,abc123" />`) {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestLocationHandler_QRCode_UnknownCodePassedThrough(t *testing.T) {
	e := echo.New()
	stub := &stubLocationService{
		encodeQRFn: func(ctx context.Context, code string) (string, error) {
			return "", domain.ErrUnknownLocation
		},
	}
	handler := NewLocationHandler(stub)

	c, _ := qrContext(e, "NOPE")
	if err := handler.QRCode(c); !errors.Is(err, domain.ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation to propagate, got %v", err)
	}
}
