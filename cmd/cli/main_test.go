package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func withTestServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	origURL := baseURL
	baseURL = srv.URL
	t.Cleanup(func() { baseURL = origURL })
}

func TestListCompanies(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/companies" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"companies":[{"ico":"25596641","name":"Vzorová s.r.o."}],"total":1}`))
	})

	out := captureOutput(t, listCompanies)

	if !strings.Contains(out, "25596641") || !strings.Contains(out, "Vzorová s.r.o.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1") {
		t.Fatalf("expected total line, got:\n%s", out)
	}
}

func TestPrintStatement(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("account"); got != "Fio běžný" {
			t.Errorf("unexpected account query %q", got)
		}
		if got := r.URL.Query().Get("year"); got != "2024" {
			t.Errorf("unexpected year query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"account_code":"221000","account_name":"Fio běžný","year":2024,
			"lines":[{"id":"p1","date":"2024-01-02","description":"faktura 2024001","kind":"credit","credit_amount":"1500.50","debit_amount":"0","running_balance":"1500.50"}],
			"totals":{"total_credit":"1500.50","total_debit":"0","final_balance":"1500.50","line_count":1}
		}`))
	})

	out := captureOutput(t, func() {
		printStatement("25596641", "Fio běžný", 2024)
	})

	if !strings.Contains(out, "Výpis 221000") {
		t.Fatalf("expected statement header, got:\n%s", out)
	}
	if !strings.Contains(out, "1500.50") || !strings.Contains(out, "faktura 2024001") {
		t.Fatalf("expected statement line, got:\n%s", out)
	}
}

func TestRunImport(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/companies/25596641/imports" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"year":2024`) {
			t.Errorf("unexpected body %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"01RUN","ico":"25596641","year":2024,"status":"succeeded","account_count":3,"posting_count":120}`))
	})

	out := captureOutput(t, func() {
		runImport("25596641", 2024)
	})

	if !strings.Contains(out, "succeeded") || !strings.Contains(out, "120 postings") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
