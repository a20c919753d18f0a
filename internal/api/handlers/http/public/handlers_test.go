package public_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/borsel2002/yollar-burada/internal/api/handlers/http/public"
	mock_public "github.com/borsel2002/yollar-burada/internal/api/handlers/http/public/mocks"
	"github.com/borsel2002/yollar-burada/internal/domain"
	"github.com/borsel2002/yollar-burada/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestMarkerCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	reqBody := `{"coordinates":{"lat":41,"lng":29},"metadata":{"name":"A","category":"hazard"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-ID", "dev1")
	rr := httptest.NewRecorder()

	wantReq := domain.CreateMarkerRequest{
		Coordinates: domain.Coordinates{Lat: 41, Lng: 29},
		Metadata:    domain.MarkerMetadata{Name: "A", Category: domain.CategoryHazard},
	}

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wantMarker := domain.Marker{
		ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Coordinates: wantReq.Coordinates,
		Metadata:    wantReq.Metadata,
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(domain.MarkerTTL),
		CreatorID:   "dev1",
	}

	svc.EXPECT().
		Create(gomock.Any(), wantReq, "dev1").
		Return(wantMarker, nil).
		Times(1)

	h.MarkerCreate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Marker](t, rr)
	if !reflect.DeepEqual(got, wantMarker) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, wantMarker)
	}
}

func TestMarkerCreate_MissingDeviceID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	reqBody := `{"coordinates":{"lat":41,"lng":29},"metadata":{"name":"A","category":"hazard"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MarkerCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestMarkerCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", bytes.NewBufferString("{bad json"))
	req.Header.Set("X-Device-ID", "dev1")
	rr := httptest.NewRecorder()

	h.MarkerCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestMarkerCreate_ValidationError_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	reqBody := `{"coordinates":{"lat":41,"lng":29},"metadata":{"name":"","category":"hazard"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", bytes.NewBufferString(reqBody))
	req.Header.Set("X-Device-ID", "dev1")
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), "dev1").
		Return(domain.Marker{}, e.Wrap("name required", e.ErrInvalidInput)).
		Times(1)

	h.MarkerCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
	resp := decodeJSON[map[string]string](t, rr)
	if resp["error"] == "" {
		t.Fatal("error body must carry a message")
	}
}

func TestMarkerDelete_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	id := uuid.New()
	svc.EXPECT().
		Delete(gomock.Any(), id, "dev1").
		Return(nil).
		Times(1)

	r := chi.NewRouter()
	r.Delete("/api/v1/markers/{id}", h.MarkerDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/markers/"+id.String(), nil)
	req.Header.Set("X-Device-ID", "dev1")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	resp := decodeJSON[map[string]bool](t, rr)
	if !resp["success"] {
		t.Fatalf("expected success=true, body=%s", rr.Body.String())
	}
}

func TestMarkerDelete_Forbidden_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	id := uuid.New()
	svc.EXPECT().
		Delete(gomock.Any(), id, "dev2").
		Return(e.Wrap("delete marker", e.ErrForbidden)).
		Times(1)

	r := chi.NewRouter()
	r.Delete("/api/v1/markers/{id}", h.MarkerDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/markers/"+id.String(), nil)
	req.Header.Set("X-Device-ID", "dev2")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestMarkerDelete_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	id := uuid.New()
	svc.EXPECT().
		Delete(gomock.Any(), id, "dev1").
		Return(e.Wrap("delete marker", e.ErrNotFound)).
		Times(1)

	r := chi.NewRouter()
	r.Delete("/api/v1/markers/{id}", h.MarkerDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/markers/"+id.String(), nil)
	req.Header.Set("X-Device-ID", "dev1")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestMarkerDelete_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	r := chi.NewRouter()
	r.Delete("/api/v1/markers/{id}", h.MarkerDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/markers/not-a-uuid", nil)
	req.Header.Set("X-Device-ID", "dev1")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestMarkerList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockMarkers(ctrl)
	h := public.NewHandler(newTestLogger(), svc, nil)

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := []domain.Marker{
		{
			ID:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Coordinates: domain.Coordinates{Lat: 41, Lng: 29},
			Metadata:    domain.MarkerMetadata{Name: "A", Category: domain.CategoryHazard},
			CreatedAt:   createdAt,
			ExpiresAt:   createdAt.Add(domain.MarkerTTL),
			CreatorID:   "dev1",
		},
	}

	svc.EXPECT().List(gomock.Any()).Return(want).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/markers", nil)
	rr := httptest.NewRecorder()

	h.MarkerList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[[]domain.Marker](t, rr)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}
