package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"salary-predictor/internal/delivery/http/middleware"
	"salary-predictor/internal/domain/features"
	"salary-predictor/internal/pkg/apperror"
	"salary-predictor/internal/usecase"
)

type fakeUsecase struct {
	pred      usecase.Prediction
	err       error
	available bool
	got       features.Record
	calls     int
}

func (f *fakeUsecase) Predict(_ context.Context, rec features.Record) (usecase.Prediction, error) {
	f.calls++
	f.got = rec
	if f.err != nil {
		return usecase.Prediction{}, f.err
	}
	return f.pred, nil
}

func (f *fakeUsecase) Available() bool { return f.available }
func (f *fakeUsecase) Version() string { return "v1" }

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(uc usecase.PredictionUsecase) *fiber.App {
	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	ph := NewPredictHandler(uc, "Salary Predictor", nil)
	ph.RegisterPages(app)
	v1 := app.Group("/api/v1")
	ph.RegisterRoutes(v1)
	NewOptionsHandler().RegisterRoutes(v1)
	NewHealthHandler(uc).RegisterRoutes(app)
	return app
}

func validForm() url.Values {
	return url.Values{
		"title":          {"Backend Developer"},
		"years":          {"5"},
		"salaryDate":     {"2024-03-15"},
		"companyCountry": {"Else"},
		"worktype":       {"Remote"},
		"workhour":       {"Full Time"},
		"city":           {"Jordan "},
		"currency":       {"USD"},
	}
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(b)
}

func postForm(t *testing.T, app *fiber.App, form url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, app, req)
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, semanticResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/predictions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	status, raw := do(t, app, req)

	var sr semanticResponse
	if err := json.Unmarshal([]byte(raw), &sr); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return status, sr
}

func TestForm_RendersTableOptions(t *testing.T) {
	app := newTestApp(&fakeUsecase{available: true})

	status, body := do(t, app, httptest.NewRequest("GET", "/", nil))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	for _, want := range []string{`<form method="post"`, `value="Jordan "`, `value="Kuwait "`, `value="Full Time"`, `name="companyCountry"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}
}

func TestSubmit_ShowsPrediction(t *testing.T) {
	uc := &fakeUsecase{available: true, pred: usecase.Prediction{Formatted: "$12,346 USD"}}
	app := newTestApp(uc)

	status, body := postForm(t, app, validForm())
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, "$12,346 USD") {
		t.Fatalf("expected formatted prediction in page")
	}
	if !strings.Contains(body, `id="predictionModal"`) {
		t.Fatalf("expected prediction to be shown in the modal")
	}
	if uc.got.City != "Jordan " {
		t.Fatalf("expected trailing space to survive form binding, got %q", uc.got.City)
	}
	if !strings.Contains(body, `value="Jordan " selected`) {
		t.Fatalf("expected submitted city to stay selected")
	}
}

func TestIndex_NoModalWithoutPrediction(t *testing.T) {
	app := newTestApp(&fakeUsecase{available: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	body := string(b)

	if strings.Contains(body, `id="predictionModal"`) {
		t.Fatalf("modal must not render before a prediction")
	}
	if !strings.Contains(body, "Predicting...") {
		t.Fatalf("expected submit state script in page")
	}
}

func TestSubmit_ErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"validation", apperror.Validation("Missing required field: title", nil), "Input validation error: Missing required field: title"},
		{"unavailable", apperror.Unavailable(nil), apperror.MessageUnavailable},
		{"internal", apperror.Internal(errors.New("scaler exploded")), apperror.MessageInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&fakeUsecase{err: tc.err})

			status, body := postForm(t, app, validForm())
			if status != fiber.StatusOK {
				t.Fatalf("expected 200, got %d", status)
			}
			if !strings.Contains(body, tc.want) {
				t.Fatalf("expected page to contain %q", tc.want)
			}
			if strings.Contains(body, "scaler exploded") {
				t.Fatalf("internal detail leaked into page")
			}
		})
	}
}

func TestPredictAPI_Success(t *testing.T) {
	uc := &fakeUsecase{available: true, pred: usecase.Prediction{
		Value:     12345.6,
		Formatted: "$12,346 USD",
		Currency:  "USD",
		Category:  1,
	}}
	app := newTestApp(uc)

	status, sr := postJSON(t, app, `{"title":"Backend Developer","years":5,"salaryDate":"2024-03-15","companyCountry":"Else","worktype":"Remote","workhour":"Full Time","city":"Cairo","currency":"USD"}`)
	if status != fiber.StatusOK || sr.Status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (message=%s)", status, sr.Message)
	}
	if uc.got.Years != "5" {
		t.Fatalf("expected numeric years to bind as \"5\", got %q", uc.got.Years)
	}

	var data struct {
		Formatted    string `json:"formatted"`
		JobCategory  int    `json:"job_category"`
		ModelVersion string `json:"model_version"`
		Features     []struct {
			Name string `json:"name"`
		} `json:"features"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data decode: %v", err)
	}
	if data.Formatted != "$12,346 USD" || data.JobCategory != 1 || data.ModelVersion != "v1" {
		t.Fatalf("unexpected data %+v", data)
	}
	if len(data.Features) != features.VectorLen || data.Features[0].Name != "years" {
		t.Fatalf("unexpected features %+v", data.Features)
	}
}

func TestPredictAPI_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", apperror.Validation("Invalid currency: GBP", nil), fiber.StatusBadRequest, "Invalid currency: GBP"},
		{"unavailable", apperror.Unavailable(nil), fiber.StatusServiceUnavailable, apperror.MessageUnavailable},
		{"internal", apperror.Internal(errors.New("db password leaked")), fiber.StatusInternalServerError, apperror.MessageInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&fakeUsecase{err: tc.err})

			status, sr := postJSON(t, app, `{"title":"x"}`)
			if status != tc.status || sr.Status != tc.status {
				t.Fatalf("expected %d, got %d/%d", tc.status, status, sr.Status)
			}
			if sr.Message != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, sr.Message)
			}
		})
	}
}

func TestPredictAPI_MalformedBody(t *testing.T) {
	uc := &fakeUsecase{}
	app := newTestApp(uc)

	status, _ := postJSON(t, app, `{"title":`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if uc.calls != 0 {
		t.Fatalf("usecase should not be called on malformed body")
	}
}

func TestOptions(t *testing.T) {
	app := newTestApp(&fakeUsecase{})

	status, raw := do(t, app, httptest.NewRequest("GET", "/api/v1/options", nil))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var sr struct {
		Data struct {
			Tables []struct {
				Name    string `json:"name"`
				Entries []struct {
					Key  string `json:"key"`
					Code int    `json:"code"`
				} `json:"entries"`
			} `json:"tables"`
			JobCategories []struct {
				Code int `json:"code"`
			} `json:"job_categories"`
			FeatureNames []string `json:"feature_names"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(raw), &sr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sr.Data.Tables) != 5 || sr.Data.Tables[0].Name != "currency" {
		t.Fatalf("unexpected tables %+v", sr.Data.Tables)
	}
	if sr.Data.Tables[0].Entries[0].Key != "EGP" {
		t.Fatalf("expected currency entries in declaration order")
	}
	if len(sr.Data.JobCategories) != 7 || sr.Data.JobCategories[2].Code != 6 {
		t.Fatalf("unexpected categories %+v", sr.Data.JobCategories)
	}
	if len(sr.Data.FeatureNames) != features.VectorLen {
		t.Fatalf("unexpected feature names %v", sr.Data.FeatureNames)
	}
}

func TestHealth(t *testing.T) {
	for _, available := range []bool{true, false} {
		app := newTestApp(&fakeUsecase{available: available})

		status, raw := do(t, app, httptest.NewRequest("GET", "/health", nil))
		if status != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", status)
		}
		var sr struct {
			Data healthResponse `json:"data"`
		}
		if err := json.Unmarshal([]byte(raw), &sr); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if sr.Data.Status != "ok" || sr.Data.ModelAvailable != available {
			t.Fatalf("unexpected health %+v", sr.Data)
		}
	}
}

func TestFlexString(t *testing.T) {
	cases := map[string]string{
		`5`:      "5",
		`2.5`:    "2.5",
		`"abc"`:  "abc",
		`null`:   "",
		`" 3 "`:  " 3 ",
		`-1`:     "-1",
		`"-1.0"`: "-1.0",
	}
	for in, want := range cases {
		var s flexString
		if err := s.UnmarshalJSON([]byte(in)); err != nil {
			t.Fatalf("%s: unexpected err %v", in, err)
		}
		if string(s) != want {
			t.Fatalf("%s: expected %q, got %q", in, want, s)
		}
	}
}
