package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	chartservice "saju/internal/chart/service"
	"saju/internal/solarterm"
	"saju/internal/solarterm/store"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	kst := time.FixedZone("KST", 9*3600)
	terms := store.NewMemory(
		solarterm.Event{Name: solarterm.Daeseol, Kind: solarterm.KindJeolgi, At: time.Date(1996, 12, 7, 4, 14, 0, 0, kst)},
		solarterm.Event{Name: solarterm.Sohan, Kind: solarterm.KindJeolgi, At: time.Date(1997, 1, 5, 15, 24, 0, 0, kst)},
		solarterm.Event{Name: solarterm.Ipchun, Kind: solarterm.KindJeolgi, At: time.Date(1997, 2, 4, 3, 2, 0, 0, kst)},
	)
	svc, err := chartservice.New(terms)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func referenceBirth() BirthRequest {
	return BirthRequest{
		BirthAt:   "1997-01-01T12:30:00+09:00",
		Gender:    "male",
		Longitude: 127,
	}
}

func TestHandleCompute(t *testing.T) {
	router := testRouter(t)

	t.Run("computes reference chart", func(t *testing.T) {
		w := postJSON(t, router, "/v1/charts", ChartRequest{Birth: referenceBirth()})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}

		var chart struct {
			SPTI       string `json:"spti"`
			StemBranch struct {
				Day struct {
					Stem struct {
						Name string `json:"name"`
					} `json:"stem"`
				} `json:"day"`
			} `json:"stem_branch"`
			MajorLuckStartAge int  `json:"major_luck_start_age"`
			IsForward         bool `json:"is_forward"`
		}
		if err := json.NewDecoder(w.Body).Decode(&chart); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if chart.SPTI != "MDTO-W" {
			t.Errorf("spti = %q, want MDTO-W", chart.SPTI)
		}
		if chart.StemBranch.Day.Stem.Name != "癸" {
			t.Errorf("day stem = %q, want 癸", chart.StemBranch.Day.Stem.Name)
		}
		if chart.MajorLuckStartAge != 1 || !chart.IsForward {
			t.Errorf("luck start = %d forward = %v", chart.MajorLuckStartAge, chart.IsForward)
		}
	})

	t.Run("rejects unknown gender", func(t *testing.T) {
		birth := referenceBirth()
		birth.Gender = "other"
		w := postJSON(t, router, "/v1/charts", ChartRequest{Birth: birth})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Errorf("error = %q, want bad_request", body["error"])
		}
	})

	t.Run("rejects timestamp without offset", func(t *testing.T) {
		birth := referenceBirth()
		birth.BirthAt = "1997-01-01 12:30"
		w := postJSON(t, router, "/v1/charts", ChartRequest{Birth: birth})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/charts", bytes.NewReader([]byte("{")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestHandleAnnualLuck(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/v1/luck/annual", AnnualLuckRequest{
		Birth:    referenceBirth(),
		FromYear: 1997,
		Count:    2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		AnnualLuck []struct {
			Year int `json:"year"`
			Stem struct {
				Name string `json:"name"`
			} `json:"stem"`
		} `json:"annual_luck"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.AnnualLuck) != 2 {
		t.Fatalf("got %d entries, want 2", len(body.AnnualLuck))
	}
	if body.AnnualLuck[0].Year != 1997 || body.AnnualLuck[0].Stem.Name != "정" {
		t.Errorf("first entry = %+v", body.AnnualLuck[0])
	}
}

func TestHandleDailyPillars(t *testing.T) {
	router := testRouter(t)

	t.Run("returns requested range", func(t *testing.T) {
		w := postJSON(t, router, "/v1/pillars/daily", DailyPillarsRequest{
			Birth:    referenceBirth(),
			FromDate: "2024-01-01",
			Count:    2,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var body struct {
			DailyPillars []struct {
				Date string `json:"date"`
				Stem struct {
					Name string `json:"name"`
				} `json:"stem"`
			} `json:"daily_pillars"`
		}
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(body.DailyPillars) != 2 {
			t.Fatalf("got %d entries, want 2", len(body.DailyPillars))
		}
		if body.DailyPillars[0].Stem.Name != "갑" {
			t.Errorf("first stem = %q, want 갑", body.DailyPillars[0].Stem.Name)
		}
	})

	t.Run("rejects bad date", func(t *testing.T) {
		w := postJSON(t, router, "/v1/pillars/daily", DailyPillarsRequest{
			Birth:    referenceBirth(),
			FromDate: "01/01/2024",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
