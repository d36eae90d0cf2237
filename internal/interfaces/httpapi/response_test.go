package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/pickemhq/survivor-pool/internal/domain/playoff"
	"github.com/pickemhq/survivor-pool/internal/domain/survivor"
	"github.com/pickemhq/survivor-pool/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_Sentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: nope", usecase.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: denied", usecase.ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("%w: odds feed down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if mapped := mapError(context.Background(), tc.err); mapped.HTTPStatus != tc.status {
			t.Fatalf("mapError(%v) = %d, want %d", tc.err, mapped.HTTPStatus, tc.status)
		}
	}
}

func TestMapError_RuleReasons(t *testing.T) {
	cases := []struct {
		err    error
		reason string
		status string
	}{
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, survivor.ErrEliminated), "eliminated", "FAILED_PRECONDITION"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, survivor.ErrDeadlinePassed), "deadlinePassed", "FAILED_PRECONDITION"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, survivor.ErrTeamAlreadyUsed), "teamAlreadyUsed", "FAILED_PRECONDITION"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, survivor.ErrTeamOnBye), "teamOnBye", "FAILED_PRECONDITION"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, survivor.ErrNoEligibleAutoPick), "noEligibleAutoPick", "FAILED_PRECONDITION"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, playoff.ErrInvalidMargin), "invalidMargin", "INVALID_ARGUMENT"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, playoff.ErrGameUnresolved), "gameUnresolved", "FAILED_PRECONDITION"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, playoff.ErrUnknownGame), "unknownGame", "INVALID_ARGUMENT"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, playoff.ErrTeamNotInGame), "teamNotInGame", "INVALID_ARGUMENT"},
		{fmt.Errorf("%w: %w", usecase.ErrInvalidInput, playoff.ErrGameAlreadyOver), "gameAlreadyOver", "FAILED_PRECONDITION"},
		{fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), "invalidInput", "INVALID_ARGUMENT"},
	}
	for _, tc := range cases {
		mapped := mapError(context.Background(), tc.err)
		if mapped.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("mapError(%v) status = %d, want 400", tc.err, mapped.HTTPStatus)
		}
		if mapped.Reason != tc.reason || mapped.Status != tc.status {
			t.Fatalf("mapError(%v) = %s/%s, want %s/%s", tc.err, mapped.Reason, mapped.Status, tc.reason, tc.status)
		}
	}
}
