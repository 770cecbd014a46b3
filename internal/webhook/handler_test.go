package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/strategos/strategos/internal/archive"
	"github.com/strategos/strategos/internal/baseline"
)

var testSecret = []byte("test-secret")

func sign(payload []byte) string {
	mac := hmac.New(sha256.New, testSecret)
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

type fakeBaselines struct {
	runID    *string
	baseline *baseline.Baseline
	err      error
}

func (f *fakeBaselines) Record(ctx context.Context, runID *string) (*baseline.Baseline, error) {
	f.runID = runID
	return f.baseline, f.err
}

type fakeArchiver struct {
	minScore float64
	result   archive.Result
	calls    int
}

func (f *fakeArchiver) Archive(ctx context.Context, minScore float64) (archive.Result, error) {
	f.minScore = minScore
	f.calls++
	return f.result, nil
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"actions":["baseline"]}`)

	if err := VerifySignature(payload, sign(payload), testSecret); err != nil {
		t.Errorf("valid signature rejected: %v", err)
	}
	if err := VerifySignature(payload, sign([]byte("other")), testSecret); err == nil {
		t.Error("mismatched signature accepted")
	}
	if err := VerifySignature(payload, "md5=abcd", testSecret); err == nil {
		t.Error("wrong prefix accepted")
	}
	if err := VerifySignature(payload, "sha256=not-hex", testSecret); err == nil {
		t.Error("non-hex signature accepted")
	}
}

func postSigned(t *testing.T, h *Handler, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/automation", bytes.NewReader(body))
	req.Header.Set("X-Signature-256", signature)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerRunsBothActionsByDefault(t *testing.T) {
	baselines := &fakeBaselines{baseline: &baseline.Baseline{TopScore: 4.2}}
	archiver := &fakeArchiver{result: archive.Result{Archived: 3, Total: 5}}
	h := NewHandler(testSecret, baselines, archiver, 4.0)

	body := []byte(`{"runId":"nightly-42"}`)
	rec := postSigned(t, h, body, sign(body))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if baselines.runID == nil || *baselines.runID != "nightly-42" {
		t.Error("run id not passed to baseline recorder")
	}
	if archiver.calls != 1 || archiver.minScore != 4.0 {
		t.Errorf("archive calls=%d minScore=%f", archiver.calls, archiver.minScore)
	}

	var report struct {
		RunID    string             `json:"runId"`
		Baseline *baseline.Baseline `json:"baseline"`
		Archive  *archive.Result    `json:"archive"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.RunID != "nightly-42" || report.Baseline == nil || report.Archive == nil {
		t.Errorf("incomplete report: %+v", report)
	}
}

func TestHandlerSingleAction(t *testing.T) {
	baselines := &fakeBaselines{baseline: &baseline.Baseline{}}
	archiver := &fakeArchiver{}
	h := NewHandler(testSecret, baselines, archiver, 4.0)

	body := []byte(`{"actions":["baseline"]}`)
	rec := postSigned(t, h, body, sign(body))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
	if archiver.calls != 0 {
		t.Error("archive should not run when not requested")
	}
	if baselines.runID == nil || *baselines.runID == "" {
		t.Error("missing run id should be generated")
	}
}

func TestHandlerRejectsBadSignature(t *testing.T) {
	h := NewHandler(testSecret, &fakeBaselines{}, &fakeArchiver{}, 4.0)

	body := []byte(`{}`)
	rec := postSigned(t, h, body, "sha256=deadbeef")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandlerRejectsUnknownAction(t *testing.T) {
	h := NewHandler(testSecret, &fakeBaselines{}, &fakeArchiver{}, 4.0)

	body := []byte(`{"actions":["reindex"]}`)
	rec := postSigned(t, h, body, sign(body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
