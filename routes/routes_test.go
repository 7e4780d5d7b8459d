package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dailyquiz/handlers"
	"dailyquiz/routes"
	"dailyquiz/services"
	"dailyquiz/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dataStore := store.New("letmein", time.UTC)
	hub := services.NewHub()
	go hub.Run()

	router := gin.New()
	routes.SetupRoutes(router,
		handlers.NewQuestionHandler(dataStore, hub),
		handlers.NewAnswerHandler(dataStore, hub),
		handlers.NewMediaHandler(dataStore, hub),
		handlers.NewPhoneHandler(dataStore, hub),
		handlers.NewStatsHandler(dataStore),
		handlers.NewAdminHandler(dataStore, hub),
		handlers.NewMetaHandler(dataStore),
		hub,
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error decoding body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCreateQuestion_MissingText(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/questions", `{"answer":"Paris"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Question is required" {
		t.Errorf("error = %v, want Question is required", got)
	}

	w = doRequest(t, router, http.MethodGet, "/questions", "")
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("questions after failed create = %s, want []", body)
	}
}

func TestQuestionFlow_RevealPreviousAnswer(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/questions", `{"question":"What is the capital of France?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	created := decodeBody(t, w)
	if created["success"] != true {
		t.Errorf("success = %v, want true", created["success"])
	}
	q1 := created["question"].(map[string]interface{})
	q1ID := q1["id"].(string)

	w = doRequest(t, router, http.MethodPost, "/questions",
		`{"question":"What is the capital of Germany?","answer":"Paris"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/questions/"+q1ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := decodeBody(t, w)["answer"]; got != "Paris" {
		t.Errorf("previous question answer = %v, want Paris", got)
	}
}

func TestGetQuestion_NotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/questions/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Question not found" {
		t.Errorf("error = %v, want Question not found", got)
	}
}

func TestUpdateAnswer(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/questions", `{"question":"What is the capital of France?"}`)
	q := decodeBody(t, w)["question"].(map[string]interface{})
	id := q["id"].(string)

	w = doRequest(t, router, http.MethodPut, "/questions/"+id+"/answer", `{"answer":"Paris"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	updated := decodeBody(t, w)["question"].(map[string]interface{})
	if updated["answer"] != "Paris" {
		t.Errorf("answer = %v, want Paris", updated["answer"])
	}

	w = doRequest(t, router, http.MethodPut, "/questions/missing/answer", `{"answer":"Paris"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSubmitAnswer_Duplicate(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	body := `{"questionId":"q1","studentPin":"1234","studentName":"Asha","answer":"Paris"}`
	w := doRequest(t, router, http.MethodPost, "/answers", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doRequest(t, router, http.MethodPost, "/answers", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "You have already answered this" {
		t.Errorf("error = %v, want You have already answered this", got)
	}
}

func TestLatestMedia_Empty(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/media/latest", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "No media files found" {
		t.Errorf("error = %v, want No media files found", got)
	}
}

func TestMediaUploadAndDelete(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/media",
		`{"type":"image","data":"ZGF0YQ==","fileName":"pic.png","opinion":"What do you think?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	item := decodeBody(t, w)["media"].(map[string]interface{})
	id := item["id"].(string)

	w = doRequest(t, router, http.MethodDelete, "/media/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	w = doRequest(t, router, http.MethodDelete, "/media/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/media", "")
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("media after delete = %s, want []", body)
	}
}

func TestRegisterPhone_Upsert(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/phones",
		`{"pin":"1234","name":"Asha","phone":"+91 98765 43210"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doRequest(t, router, http.MethodPost, "/phones",
		`{"pin":"1234","name":"Asha K","phone":"+91 91234 56789"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/phones", "")
	phones := decodeBody(t, w)
	if len(phones) != 1 {
		t.Fatalf("len(phones) = %d, want 1", len(phones))
	}
	record := phones["1234"].(map[string]interface{})
	if record["name"] != "Asha K" {
		t.Errorf("name = %v, want Asha K", record["name"])
	}
}

func TestRegisterPhone_MissingFields(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/phones", `{"pin":"1234"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "All fields are required" {
		t.Errorf("error = %v, want All fields are required", got)
	}
}

func TestResetAll(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/questions", `{"question":"What is the capital of France?"}`)
	doRequest(t, router, http.MethodPost, "/phones", `{"pin":"1234","name":"Asha","phone":"+91 98765 43210"}`)

	w := doRequest(t, router, http.MethodPost, "/admin/reset-all", `{"confirmPassword":"wrong"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/stats", "")
	stats := decodeBody(t, w)
	if stats["totalQuestions"].(float64) != 1 {
		t.Errorf("totalQuestions after rejected reset = %v, want 1", stats["totalQuestions"])
	}

	w = doRequest(t, router, http.MethodPost, "/admin/reset-all", `{"confirmPassword":"letmein"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/stats", "")
	stats = decodeBody(t, w)
	for _, key := range []string{"totalQuestions", "totalAnswers", "totalMedia", "totalStudents", "uniqueStudents"} {
		if stats[key].(float64) != 0 {
			t.Errorf("%s after reset = %v, want 0", key, stats[key])
		}
	}
}

func TestAPIInfo(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "running" {
		t.Errorf("status = %v, want running", body["status"])
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/questions", `{"question":"What is the capital of France?"}`)

	w := doRequest(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "OK" {
		t.Errorf("status = %v, want OK", body["status"])
	}
	dataStats := body["dataStats"].(map[string]interface{})
	if dataStats["questions"].(float64) != 1 {
		t.Errorf("dataStats.questions = %v, want 1", dataStats["questions"])
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Endpoint not found" {
		t.Errorf("error = %v, want Endpoint not found", body["error"])
	}
	if body["requestedPath"] != "/nope" {
		t.Errorf("requestedPath = %v, want /nope", body["requestedPath"])
	}
}
