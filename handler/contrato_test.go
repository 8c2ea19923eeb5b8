package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/arrebolmedia/video-editor/model"
)

func testContratoRequest() ContratoRequest {
	return ContratoRequest{
		ClientName:    "Ana García López",
		ClientAddress: "Av. Reforma 123, Ciudad de México",
		WeddingDate:   "2026-06-20",
		Venue:         "Hacienda San Gabriel",
		Deliverables:  model.StringList{"Cobertura de 8 horas", "500 fotografías editadas"},
		TotalAmount:   59000,
		DepositAmount: 17700,
		MealsCount:    3,
	}
}

func TestContratoCRUD(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/contratos", testContratoRequest())
	if w.Code != http.StatusOK {
		t.Fatalf("Create failed: %d %s", w.Code, w.Body.String())
	}

	var contrato model.Contrato
	decodeJSON(t, w, &contrato)
	if contrato.Status != model.ContratoDraft {
		t.Errorf("Expected draft status, got %q", contrato.Status)
	}

	req := testContratoRequest()
	req.Status = model.ContratoSigned
	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/contratos/%d", contrato.ID), req)
	if w.Code != http.StatusOK {
		t.Fatalf("Update failed: %d %s", w.Code, w.Body.String())
	}
	var updated model.Contrato
	decodeJSON(t, w, &updated)
	if updated.Status != model.ContratoSigned {
		t.Errorf("Status update not applied: %+v", updated)
	}

	w = doJSON(t, router, "GET", "/api/contratos", nil)
	var list []model.Contrato
	decodeJSON(t, w, &list)
	if len(list) != 1 {
		t.Errorf("Expected 1 contrato, got %d", len(list))
	}

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/contratos/%d", contrato.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Delete failed: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/contratos/%d", contrato.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", w.Code)
	}
}

func TestContratoCreateWithoutClientName(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/contratos", map[string]string{"venue": "Hacienda"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestContratoUploadSigned(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/contratos", testContratoRequest())
	var contrato model.Contrato
	decodeJSON(t, w, &contrato)

	w = doJSON(t, router, "POST", fmt.Sprintf("/api/contratos/%d/signed", contrato.ID), SignedContractRequest{
		SignedContractFile: "JVBERi0xLjQ=",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var signed model.Contrato
	decodeJSON(t, w, &signed)
	if signed.Status != model.ContratoSigned {
		t.Errorf("Expected signed status, got %q", signed.Status)
	}
	if signed.SignedContractFile != "JVBERi0xLjQ=" {
		t.Errorf("Signed file not stored: %q", signed.SignedContractFile)
	}

	w = doJSON(t, router, "POST", fmt.Sprintf("/api/contratos/%d/signed", contrato.ID), map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without a file, got %d", w.Code)
	}
}

func TestContratoSignedURLWithoutArchive(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/contratos", testContratoRequest())
	var contrato model.Contrato
	decodeJSON(t, w, &contrato)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/contratos/%d/signed-url", contrato.ID), nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 without object storage, got %d", w.Code)
	}
}

func TestContratoPDF(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/contratos", testContratoRequest())
	var contrato model.Contrato
	decodeJSON(t, w, &contrato)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/contratos/%d/pdf", contrato.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("PDF failed: %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected application/pdf, got %q", ct)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "Contrato_Ana_García_López_2026-06-20.pdf") {
		t.Errorf("Unexpected filename: %q", disposition)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("Response body is not a PDF")
	}

	w = doJSON(t, router, "GET", "/api/contratos/999/pdf", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
