package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func kolkataRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	ctrl := NewKolkataController(db)
	r := gin.New()
	r.GET("/kolkata/questions", ctrl.Questions)
	r.POST("/kolkata/check-answer", ctrl.CheckAnswer)
	return r, db
}

func TestKolkataQuestionsHideCorrectOption(t *testing.T) {
	r, db := kolkataRouter(t)
	seedKolkata(t, db)

	rec := performRequest(t, r, http.MethodGet, "/kolkata/questions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success   bool `json:"success"`
		Questions []struct {
			ID       uint   `json:"id"`
			Question string `json:"question"`
			OptionA  string `json:"option_a"`
			OptionB  string `json:"option_b"`
		} `json:"questions"`
	}
	decodeJSON(t, rec, &body)
	if !body.Success || len(body.Questions) != 1 {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
	if body.Questions[0].OptionB != "Howrah Bridge" {
		t.Fatalf("option_b = %q", body.Questions[0].OptionB)
	}
	if strings.Contains(rec.Body.String(), "correct_option") {
		t.Fatalf("listing leaks the correct option: %s", rec.Body.String())
	}
}

func TestKolkataQuestionsEmptyTable(t *testing.T) {
	r, _ := kolkataRouter(t)

	rec := performRequest(t, r, http.MethodGet, "/kolkata/questions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"questions":[]`) {
		t.Fatalf("empty table should serialize an empty array: %s", rec.Body.String())
	}
}

func TestKolkataCheckAnswerWrongReturnsCorrectText(t *testing.T) {
	r, db := kolkataRouter(t)
	q := seedKolkata(t, db)

	rec := performRequest(t, r, http.MethodPost, "/kolkata/check-answer",
		fmt.Sprintf(`{"id":%d,"selectedOption":"A"}`, q.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success           bool   `json:"success"`
		Correct           bool   `json:"correct"`
		CorrectAnswerText string `json:"correctAnswerText"`
	}
	decodeJSON(t, rec, &body)
	if !body.Success || body.Correct {
		t.Fatalf("unexpected verdict: %s", rec.Body.String())
	}
	if body.CorrectAnswerText != "Howrah Bridge" {
		t.Fatalf("correctAnswerText = %q, want %q", body.CorrectAnswerText, "Howrah Bridge")
	}
}

func TestKolkataCheckAnswerCorrectOmitsText(t *testing.T) {
	r, db := kolkataRouter(t)
	q := seedKolkata(t, db)

	rec := performRequest(t, r, http.MethodPost, "/kolkata/check-answer",
		fmt.Sprintf(`{"id":%d,"selectedOption":"B"}`, q.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"correct":true`) {
		t.Fatalf("unexpected verdict: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "correctAnswerText") {
		t.Fatalf("correct verdict should not carry correctAnswerText: %s", rec.Body.String())
	}
}

func TestKolkataCheckAnswerCaseSensitive(t *testing.T) {
	r, db := kolkataRouter(t)
	q := seedKolkata(t, db)

	rec := performRequest(t, r, http.MethodPost, "/kolkata/check-answer",
		fmt.Sprintf(`{"id":%d,"selectedOption":"b"}`, q.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"correct":false`) {
		t.Fatalf("lowercase letter must not match: %s", rec.Body.String())
	}
}

func TestKolkataCheckAnswerValidation(t *testing.T) {
	r, db := kolkataRouter(t)
	seedKolkata(t, db)

	for _, payload := range []string{`{}`, `{"id":1}`, `{"selectedOption":"A"}`} {
		rec := performRequest(t, r, http.MethodPost, "/kolkata/check-answer", payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: status = %d, want %d", payload, rec.Code, http.StatusBadRequest)
		}
	}

	rec := performRequest(t, r, http.MethodPost, "/kolkata/check-answer",
		`{"id":999,"selectedOption":"A"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
