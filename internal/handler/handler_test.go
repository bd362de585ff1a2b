package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"student-wellness-api/internal/handler"
	"student-wellness-api/internal/middleware"
	"student-wellness-api/internal/store"
)

func setup(t *testing.T) http.Handler {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	secret := os.Getenv("JWT_SECRET")
	if dbURL == "" || secret == "" {
		t.Skip("DATABASE_URL or JWT_SECRET not set")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := store.Migrate(context.Background(), pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st := store.New(pool)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.New(st, secret, logger)

	// generous limits so tests never throttle themselves
	rl := middleware.NewRateLimiter(1000, 1000)
	return h.Routes(rl, []string{"*"})
}

func do(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("parse response %q: %v", rec.Body.String(), err)
	}
	return out
}

func signupStudent(t *testing.T, router http.Handler) (userID, token string) {
	t.Helper()
	suffix := uuid.New().String()[:8]
	rec := do(t, router, "POST", "/signup", "", map[string]any{
		"email":      fmt.Sprintf("student-%s@test.com", suffix),
		"password":   "testpass123",
		"first_name": "Test",
		"last_name":  "Student",
		"contact":    "0700000000",
		"course":     "Computer Science",
		"level":      200,
		"roll_id":    "ROLL-" + suffix,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: %d %s", rec.Code, rec.Body.String())
	}
	body := parse(t, rec)
	return body["user_id"].(string), body["token"].(string)
}

func createCounselor(t *testing.T, router http.Handler, token string) string {
	t.Helper()
	rec := do(t, router, "POST", "/counselors", token, map[string]any{
		"email":          fmt.Sprintf("counselor-%s@test.com", uuid.New().String()[:8]),
		"first_name":     "Test",
		"last_name":      "Counselor",
		"specialization": "anxiety",
		"location":       "Block C",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create counselor: %d %s", rec.Code, rec.Body.String())
	}
	return parse(t, rec)["id"].(string)
}

func bookAppointment(t *testing.T, router http.Handler, token, counselorID, studentID string, start time.Time) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, router, "POST", "/book-appointment", token, map[string]any{
		"appointmentTime": start.Format(time.RFC3339),
		"counselorId":     counselorID,
		"studentId":       studentID,
		"status":          "scheduled",
		"type":            "in-person",
		"title":           "session",
		"description":     "test session",
	})
}

// futureSlot returns a start time far enough out that no other test run
// can collide with it, unique per call.
func futureSlot(hoursFromNow int) time.Time {
	return time.Now().UTC().Add(time.Duration(hoursFromNow) * time.Hour).Truncate(time.Second)
}

// ----- auth -----

func TestSignupDuplicateEmail(t *testing.T) {
	router := setup(t)

	suffix := uuid.New().String()[:8]
	body := map[string]any{
		"email":      fmt.Sprintf("dup-%s@test.com", suffix),
		"password":   "testpass123",
		"first_name": "A",
		"last_name":  "B",
		"contact":    "0700000000",
		"course":     "Math",
		"level":      100,
		"roll_id":    "DUP-" + suffix,
	}

	if rec := do(t, router, "POST", "/signup", "", body); rec.Code != http.StatusCreated {
		t.Fatalf("first signup: %d %s", rec.Code, rec.Body.String())
	}

	body["roll_id"] = "DUP2-" + suffix // same email, different roll
	rec := do(t, router, "POST", "/signup", "", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", rec.Code)
	}
}

func TestSignupValidation(t *testing.T) {
	router := setup(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"password": "testpass123", "first_name": "A", "last_name": "B", "contact": "1", "course": "x", "level": 1, "roll_id": "r"}},
		{"short password", map[string]any{"email": "a@b.com", "password": "short", "first_name": "A", "last_name": "B", "contact": "1", "course": "x", "level": 1, "roll_id": "r"}},
		{"missing roll", map[string]any{"email": "a@b.com", "password": "testpass123", "first_name": "A", "last_name": "B", "contact": "1", "course": "x", "level": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, "POST", "/signup", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	router := setup(t)

	suffix := uuid.New().String()[:8]
	email := fmt.Sprintf("login-%s@test.com", suffix)
	rec := do(t, router, "POST", "/signup", "", map[string]any{
		"email": email, "password": "testpass123",
		"first_name": "L", "last_name": "U", "contact": "1", "course": "x",
		"level": 1, "roll_id": "L-" + suffix,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: %d %s", rec.Code, rec.Body.String())
	}
	userID := parse(t, rec)["user_id"].(string)

	rec = do(t, router, "POST", "/login", "", map[string]any{"email": email, "password": "testpass123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rec.Code, rec.Body.String())
	}
	body := parse(t, rec)
	if body["user_id"] != userID {
		t.Errorf("login user_id = %v, want %v", body["user_id"], userID)
	}
	if body["token"] == "" || body["token"] == nil {
		t.Error("login returned no token")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router := setup(t)

	suffix := uuid.New().String()[:8]
	email := fmt.Sprintf("creds-%s@test.com", suffix)
	do(t, router, "POST", "/signup", "", map[string]any{
		"email": email, "password": "testpass123",
		"first_name": "C", "last_name": "U", "contact": "1", "course": "x",
		"level": 1, "roll_id": "C-" + suffix,
	})

	wrongPw := do(t, router, "POST", "/login", "", map[string]any{"email": email, "password": "wrongwrong"})
	unknown := do(t, router, "POST", "/login", "", map[string]any{"email": "nobody-" + suffix + "@test.com", "password": "testpass123"})

	if wrongPw.Code != http.StatusBadRequest || unknown.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", wrongPw.Code, unknown.Code)
	}
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Errorf("wrong-password and unknown-email responses differ: %q vs %q",
			wrongPw.Body.String(), unknown.Body.String())
	}
}

func TestAuthRequired(t *testing.T) {
	router := setup(t)

	if rec := do(t, router, "GET", "/workouts", "", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: expected 401, got %d", rec.Code)
	}
	if rec := do(t, router, "GET", "/workouts", "garbage", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: expected 401, got %d", rec.Code)
	}
}

// ----- appointment booking -----

func TestBookingConflictScenario(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)
	counselorID := createCounselor(t, router, token)

	start := futureSlot(240)

	// 10:00 slot books fine
	if rec := bookAppointment(t, router, token, counselorID, studentID, start); rec.Code != http.StatusCreated {
		t.Fatalf("initial booking: %d %s", rec.Code, rec.Body.String())
	}

	// 10:30 overlaps
	if rec := bookAppointment(t, router, token, counselorID, studentID, start.Add(30*time.Minute)); rec.Code != http.StatusBadRequest {
		t.Errorf("overlap booking: expected 400, got %d %s", rec.Code, rec.Body.String())
	}

	// 09:30 overlaps from the other side
	if rec := bookAppointment(t, router, token, counselorID, studentID, start.Add(-30*time.Minute)); rec.Code != http.StatusBadRequest {
		t.Errorf("leading overlap: expected 400, got %d", rec.Code)
	}

	// 11:00 touches the end, not a conflict
	if rec := bookAppointment(t, router, token, counselorID, studentID, start.Add(time.Hour)); rec.Code != http.StatusCreated {
		t.Errorf("adjacent booking: expected 201, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestBookingPastDate(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)
	counselorID := createCounselor(t, router, token)

	rec := bookAppointment(t, router, token, counselorID, studentID, time.Now().UTC().Add(-24*time.Hour))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("past booking: expected 400, got %d", rec.Code)
	}
}

func TestBookingUnknownCounselor(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)

	rec := bookAppointment(t, router, token, uuid.New().String(), studentID, futureSlot(250))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown counselor, got %d", rec.Code)
	}
}

func TestDifferentCounselorsNoConflict(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)
	c1 := createCounselor(t, router, token)
	c2 := createCounselor(t, router, token)

	start := futureSlot(260)
	if rec := bookAppointment(t, router, token, c1, studentID, start); rec.Code != http.StatusCreated {
		t.Fatalf("first counselor: %d", rec.Code)
	}
	if rec := bookAppointment(t, router, token, c2, studentID, start); rec.Code != http.StatusCreated {
		t.Errorf("second counselor same slot: expected 201, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestUserAppointments(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)
	counselorID := createCounselor(t, router, token)

	// booked out of order; list must come back sorted by start
	second := futureSlot(272)
	first := futureSlot(270)
	bookAppointment(t, router, token, counselorID, studentID, second)
	bookAppointment(t, router, token, counselorID, studentID, first)

	rec := do(t, router, "GET", "/user-appointments?userId="+studentID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("user appointments: %d", rec.Code)
	}
	var apts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &apts); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(apts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(apts))
	}
	t0, _ := time.Parse(time.RFC3339, apts[0]["appointment_time"].(string))
	t1, _ := time.Parse(time.RFC3339, apts[1]["appointment_time"].(string))
	if t0.After(t1) {
		t.Error("appointments not ordered by start time")
	}

	// the counselor side sees the same rows
	rec = do(t, router, "GET", "/user-appointments?userId="+counselorID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("counselor appointments: %d", rec.Code)
	}

	// no rows is an empty list, not an error
	rec = do(t, router, "GET", "/user-appointments?userId="+uuid.New().String(), token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("empty result: expected 200, got %d", rec.Code)
	}

	// missing userId is a validation error
	rec = do(t, router, "GET", "/user-appointments", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing userId: expected 400, got %d", rec.Code)
	}
}

// ----- appointment updates -----

func TestUpdateAppointmentMove(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)
	counselorID := createCounselor(t, router, token)

	start := futureSlot(280)
	rec := bookAppointment(t, router, token, counselorID, studentID, start)
	if rec.Code != http.StatusCreated {
		t.Fatalf("book first: %d", rec.Code)
	}
	rec = bookAppointment(t, router, token, counselorID, studentID, start.Add(3*time.Hour))
	if rec.Code != http.StatusCreated {
		t.Fatalf("book second: %d", rec.Code)
	}
	secondID := parse(t, rec)["id"].(string)

	// moving the second onto the first conflicts
	rec = do(t, router, "PATCH", "/update-appointment", token, map[string]any{
		"appointmentId":   secondID,
		"appointmentTime": start.Add(30 * time.Minute).Format(time.RFC3339),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("move onto occupied slot: expected 400, got %d %s", rec.Code, rec.Body.String())
	}

	// moving to the first's end time is allowed
	rec = do(t, router, "PATCH", "/update-appointment", token, map[string]any{
		"appointmentId":   secondID,
		"appointmentTime": start.Add(time.Hour).Format(time.RFC3339),
	})
	if rec.Code != http.StatusOK {
		t.Errorf("move to adjacent slot: expected 200, got %d %s", rec.Code, rec.Body.String())
	}

	// re-submitting its own slot is not a self-conflict
	rec = do(t, router, "PATCH", "/update-appointment", token, map[string]any{
		"appointmentId":   secondID,
		"appointmentTime": start.Add(time.Hour).Format(time.RFC3339),
	})
	if rec.Code != http.StatusOK {
		t.Errorf("same-slot update: expected 200, got %d %s", rec.Code, rec.Body.String())
	}

	// past times are rejected
	rec = do(t, router, "PATCH", "/update-appointment", token, map[string]any{
		"appointmentId":   secondID,
		"appointmentTime": time.Now().UTC().Add(-time.Hour).Format(time.RFC3339),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("past update: expected 400, got %d", rec.Code)
	}
}

func TestUpdateAppointmentTitleOnly(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)
	counselorID := createCounselor(t, router, token)

	start := futureSlot(290)
	rec := bookAppointment(t, router, token, counselorID, studentID, start)
	if rec.Code != http.StatusCreated {
		t.Fatalf("book: %d", rec.Code)
	}
	id := parse(t, rec)["id"].(string)

	rec = do(t, router, "PATCH", "/update-appointment", token, map[string]any{
		"appointmentId": id,
		"title":         "renamed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("title update: %d %s", rec.Code, rec.Body.String())
	}
	body := parse(t, rec)
	if body["title"] != "renamed" {
		t.Errorf("title = %v", body["title"])
	}
	got, _ := time.Parse(time.RFC3339, body["appointment_time"].(string))
	if !got.Equal(start) {
		t.Errorf("time changed on title-only update: %v != %v", got, start)
	}
}

func TestUpdateAppointmentEmptyPatch(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)
	counselorID := createCounselor(t, router, token)

	rec := bookAppointment(t, router, token, counselorID, studentID, futureSlot(300))
	id := parse(t, rec)["id"].(string)

	rec = do(t, router, "PATCH", "/update-appointment", token, map[string]any{"appointmentId": id})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty patch: expected 400, got %d", rec.Code)
	}
}

func TestDeleteAppointment(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)
	counselorID := createCounselor(t, router, token)

	rec := bookAppointment(t, router, token, counselorID, studentID, futureSlot(310))
	id := parse(t, rec)["id"].(string)

	rec = do(t, router, "DELETE", "/delete-appointments/"+id, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", rec.Code, rec.Body.String())
	}

	// slot is free again
	if rec := bookAppointment(t, router, token, counselorID, studentID, futureSlot(310)); rec.Code != http.StatusCreated {
		t.Errorf("rebook freed slot: expected 201, got %d", rec.Code)
	}
}

func TestDeleteNonexistentIsNotFound(t *testing.T) {
	router := setup(t)
	_, token := signupStudent(t, router)

	paths := []string{
		"/delete-appointments/" + uuid.New().String(),
		"/counselors/" + uuid.New().String(),
		"/thought-diaries/" + uuid.New().String(),
		"/workouts/" + uuid.New().String(),
		"/student-exercises/" + uuid.New().String(),
	}
	for _, p := range paths {
		if rec := do(t, router, "DELETE", p, token, nil); rec.Code != http.StatusNotFound {
			t.Errorf("DELETE %s: expected 404, got %d", p, rec.Code)
		}
	}
}

// ----- counselors -----

func TestCounselorCRUD(t *testing.T) {
	router := setup(t)
	_, token := signupStudent(t, router)

	email := fmt.Sprintf("crud-%s@test.com", uuid.New().String()[:8])
	rec := do(t, router, "POST", "/counselors", token, map[string]any{
		"first_name": "Jane", "last_name": "Doe", "email": email,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	id := parse(t, rec)["id"].(string)

	// duplicate email
	rec = do(t, router, "POST", "/counselors", token, map[string]any{
		"first_name": "Jane", "last_name": "Doe", "email": email,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate email: expected 400, got %d", rec.Code)
	}

	// partial update touches only the supplied field
	rec = do(t, router, "PATCH", "/counselors", token, map[string]any{
		"id": id, "specialization": "stress management",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: %d %s", rec.Code, rec.Body.String())
	}
	body := parse(t, rec)
	if body["specialization"] != "stress management" {
		t.Errorf("specialization = %v", body["specialization"])
	}
	if body["first_name"] != "Jane" {
		t.Errorf("first_name changed: %v", body["first_name"])
	}

	// empty patch fails before touching the store
	rec = do(t, router, "PATCH", "/counselors", token, map[string]any{"id": id})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty patch: expected 400, got %d", rec.Code)
	}

	rec = do(t, router, "DELETE", "/counselors/"+id, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}
	if rec := do(t, router, "GET", "/counselors/"+id, token, nil); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestCounselorAvailabilityRoundTrip(t *testing.T) {
	router := setup(t)
	_, token := signupStudent(t, router)
	id := createCounselor(t, router, token)

	availability := map[string]any{
		"monday":  []string{"09:00-12:00", "14:00-17:00"},
		"tuesday": []string{},
	}
	rec := do(t, router, "PATCH", "/counselors/"+id+"/availability", token, map[string]any{
		"availability": availability,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("set availability: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, router, "GET", "/counselors/"+id+"/availability", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get availability: %d", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse availability: %v", err)
	}
	monday, _ := got["monday"].([]any)
	if len(monday) != 2 {
		t.Errorf("availability not stored verbatim: %v", got)
	}
}

// ----- thought diaries -----

func TestDiaryLifecycle(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)

	rec := do(t, router, "POST", "/thought-diaries", token, map[string]any{
		"student_id": studentID,
		"content":    "felt good after the session",
		"mood":       "calm",
		"title":      "tuesday",
		"color":      "#aaddcc",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	entryID := parse(t, rec)["id"].(string)

	rec = do(t, router, "GET", "/thought-diaries/"+studentID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: %d", rec.Code)
	}
	var entries []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	// mood is patchable (the stored column, not the phantom "tags")
	rec = do(t, router, "PATCH", "/thought-diaries/"+entryID, token, map[string]any{"mood": "anxious"})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: %d %s", rec.Code, rec.Body.String())
	}
	if parse(t, rec)["mood"] != "anxious" {
		t.Error("mood not updated")
	}

	rec = do(t, router, "PATCH", "/thought-diaries/"+entryID, token, map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty patch: expected 400, got %d", rec.Code)
	}

	rec = do(t, router, "DELETE", "/thought-diaries/"+entryID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}
}

func TestDiaryOwnership(t *testing.T) {
	router := setup(t)
	ownerID, ownerToken := signupStudent(t, router)
	_, otherToken := signupStudent(t, router)

	rec := do(t, router, "POST", "/thought-diaries", ownerToken, map[string]any{
		"student_id": ownerID,
		"content":    "private",
		"title":      "private entry",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}
	entryID := parse(t, rec)["id"].(string)

	// another student cannot modify or delete it; 404 hides its existence
	rec = do(t, router, "PATCH", "/thought-diaries/"+entryID, otherToken, map[string]any{"content": "defaced"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign patch: expected 404, got %d", rec.Code)
	}
	rec = do(t, router, "DELETE", "/thought-diaries/"+entryID, otherToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign delete: expected 404, got %d", rec.Code)
	}

	// the owner still can
	rec = do(t, router, "DELETE", "/thought-diaries/"+entryID, ownerToken, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("owner delete: expected 200, got %d", rec.Code)
	}
}

// ----- workouts and exercises -----

func TestWorkoutExerciseFlow(t *testing.T) {
	router := setup(t)
	studentID, token := signupStudent(t, router)

	rec := do(t, router, "POST", "/workouts", token, map[string]any{
		"title": "morning stretch", "description": "light mobility",
		"difficulty": "easy", "duration": 20,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create workout: %d %s", rec.Code, rec.Body.String())
	}
	workoutID := parse(t, rec)["id"].(string)

	// COALESCE-style patch: only duration changes
	rec = do(t, router, "PATCH", "/workouts/"+workoutID, token, map[string]any{"duration": 30})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch workout: %d %s", rec.Code, rec.Body.String())
	}
	body := parse(t, rec)
	if body["duration"].(float64) != 30 {
		t.Errorf("duration = %v", body["duration"])
	}
	if body["title"] != "morning stretch" {
		t.Errorf("title changed: %v", body["title"])
	}

	// assign it to the student
	rec = do(t, router, "POST", "/student-workouts", token, map[string]any{
		"student_id": studentID, "workout_id": workoutID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("assign workout: %d %s", rec.Code, rec.Body.String())
	}
	assignmentID := parse(t, rec)["id"].(string)

	// assigning a nonexistent workout violates the FK and is a client error
	rec = do(t, router, "POST", "/student-workouts", token, map[string]any{
		"student_id": studentID, "workout_id": uuid.New().String(),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad workout reference: expected 400, got %d", rec.Code)
	}

	// exercises hang off the assignment
	rec = do(t, router, "POST", "/student-workouts/"+assignmentID+"/exercises", token, map[string]any{
		"student_id": studentID, "name": "squats",
		"repetitions": 12, "sets": 3, "duration": 45, "rest_period": 60,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create exercise: %d %s", rec.Code, rec.Body.String())
	}
	exerciseID := parse(t, rec)["id"].(string)

	rec = do(t, router, "GET", "/student-workouts/"+assignmentID+"/exercises", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list exercises: %d", rec.Code)
	}
	var exercises []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &exercises); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(exercises))
	}

	rec = do(t, router, "PATCH", "/student-exercises/"+exerciseID, token, map[string]any{"repetitions": 15})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch exercise: %d %s", rec.Code, rec.Body.String())
	}
	if parse(t, rec)["repetitions"].(float64) != 15 {
		t.Error("repetitions not updated")
	}

	rec = do(t, router, "PATCH", "/student-workouts/"+assignmentID, token, map[string]any{
		"status": "completed", "feedback": "felt great",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch assignment: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, router, "DELETE", "/student-exercises/"+exerciseID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete exercise: %d", rec.Code)
	}

	// catalog delete fails while the assignment still references it
	rec = do(t, router, "DELETE", "/workouts/"+workoutID, token, nil)
	if rec.Code == http.StatusInternalServerError {
		t.Errorf("FK violation leaked as 500: %s", rec.Body.String())
	}
}
