package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/Yousif-Dev/hAIckathon-2025/internal/adapter/http"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/observability"
)

type mockAssessor struct {
	record    domain.ImpactRecord
	narrative domain.ImpactNarrative
	err       error
	readyErr  error

	gotKey        domain.LocationKey
	gotAssessment domain.DumpingAssessment
}

func (m *mockAssessor) Assess(_ context.Context, key domain.LocationKey, assessment domain.DumpingAssessment) (domain.ImpactRecord, domain.ImpactNarrative, error) {
	m.gotKey = key
	m.gotAssessment = assessment
	return m.record, m.narrative, m.err
}

func (m *mockAssessor) CheckReadiness(_ context.Context) error { return m.readyErr }

type mockClassifier struct {
	assessment domain.DumpingAssessment
	err        error
	gotImage   []byte
}

func (m *mockClassifier) Classify(_ context.Context, image []byte) (domain.DumpingAssessment, error) {
	m.gotImage = image
	return m.assessment, m.err
}

func testRecord() domain.ImpactRecord {
	return domain.ImpactRecord{
		CrimeChange:      12.5,
		DeprivationIndex: 4.2,
		HousePriceImpact: -3.2,
		EnvironmentalImpact: domain.EnvironmentalImpact{
			CO2Emissions:  95.0,
			WasteVolume:   0.13,
			RecyclingRate: 42.0,
		},
		CouncilInfo: domain.CouncilInfo{
			Name:            "Westminster Council",
			ReportingURL:    "https://www.westminster.gov.uk/report-it/report-fly-tipping",
			ContactNumber:   "020 7641 6000",
			Recommendations: []string{"Report the incident to your local council"},
		},
	}
}

func testNarrative() domain.ImpactNarrative {
	return domain.ImpactNarrative{
		Statement:         "This incident affects your area.",
		RemediationSteps:  []string{"Report the incident to your local council"},
		DisposalLocations: []string{"Westminster household waste recycling centre"},
		ReportingLink:     "https://www.westminster.gov.uk/report-it/report-fly-tipping",
	}
}

func newTestServer(assessor httpadapter.Assessor, classifier domain.Classifier) *httpadapter.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return httpadapter.NewServer(":0", assessor, classifier, time.Second, logger, observability.NewMetricsForTesting())
}

func multipartReport(t *testing.T, location string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if location != "" {
		require.NoError(t, mw.WriteField("location", location))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "report.jpg")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(&mockAssessor{}, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(&mockAssessor{readyErr: fmt.Errorf("not ready yet")}, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&mockAssessor{}, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSubmit_ClassifiesAndAcceptsReport(t *testing.T) {
	classifier := &mockClassifier{
		assessment: domain.NewAssessment(domain.ScaleLarge, domain.WasteConstruction),
	}
	srv := newTestServer(&mockAssessor{}, classifier)

	body, contentType := multipartReport(t, "sw1a 1aa", []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", contentType)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("jpeg-bytes"), classifier.gotImage)

	var resp struct {
		ReportID   string `json:"reportId"`
		Scale      int    `json:"scale"`
		WasteType  string `json:"wasteType"`
		Status     string `json:"status"`
		ImpactPath string `json:"impactPath"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ReportID)
	assert.Equal(t, 3, resp.Scale)
	assert.Equal(t, "construction", resp.WasteType)
	assert.Equal(t, "received", resp.Status)
	assert.Equal(t, "/api/impact?location=SW1A1AA&scale=3&wasteType=construction", resp.ImpactPath)
}

func TestSubmit_ClassifierFailureFallsBackToDefault(t *testing.T) {
	classifier := &mockClassifier{err: errors.New("model unavailable")}
	srv := newTestServer(&mockAssessor{}, classifier)

	body, contentType := multipartReport(t, "SW1A1AA", []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", contentType)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "classification failure never rejects a report")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["scale"])
	assert.Equal(t, "unknown", resp["wasteType"])
}

func TestSubmit_NoClassifierUsesDefault(t *testing.T) {
	srv := newTestServer(&mockAssessor{}, nil)

	body, contentType := multipartReport(t, "SW1A1AA", []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", contentType)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["scale"])
}

func TestSubmit_MissingLocationReturns400(t *testing.T) {
	srv := newTestServer(&mockAssessor{}, nil)

	body, contentType := multipartReport(t, "", []byte("jpeg-bytes"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", contentType)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmit_MissingImageReturns400(t *testing.T) {
	srv := newTestServer(&mockAssessor{}, nil)

	body, contentType := multipartReport(t, "SW1A1AA", nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", contentType)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImpact_ReturnsAssembledResponse(t *testing.T) {
	assessor := &mockAssessor{record: testRecord(), narrative: testNarrative()}
	srv := newTestServer(assessor, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/impact?location=sw1a+1aa&scale=3&wasteType=construction", nil)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.LocationKey("SW1A1AA"), assessor.gotKey)
	assert.Equal(t, domain.ScaleLarge, assessor.gotAssessment.Scale)
	assert.Equal(t, domain.WasteConstruction, assessor.gotAssessment.WasteType)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12.5, resp["crimeChange"])
	assert.Equal(t, 4.2, resp["deprivationIndex"])
	assert.Equal(t, -3.2, resp["housePriceImpact"])

	env, ok := resp["environmentalImpact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 95.0, env["co2Emissions"])
	assert.Equal(t, 0.13, env["wasteVolume"])
	assert.Equal(t, 42.0, env["recyclingRate"])

	council, ok := resp["councilInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Westminster Council", council["name"])
	assert.Equal(t, "https://www.westminster.gov.uk/report-it/report-fly-tipping", council["reportingUrl"])
	assert.Equal(t, "020 7641 6000", council["contactNumber"])

	assert.Equal(t, "This incident affects your area.", resp["impactStatement"])

	rem, ok := resp["remediation"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, rem["steps"])
	assert.NotEmpty(t, rem["disposalLocations"])
	assert.Equal(t, "https://www.westminster.gov.uk/report-it/report-fly-tipping", rem["reportingLink"])
}

func TestImpact_DefaultsScaleToMedium(t *testing.T) {
	assessor := &mockAssessor{record: testRecord(), narrative: testNarrative()}
	srv := newTestServer(assessor, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/impact?location=SW1A1AA", nil)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ScaleMedium, assessor.gotAssessment.Scale)
	assert.Equal(t, domain.WasteUnknown, assessor.gotAssessment.WasteType)
}

func TestImpact_MissingLocationReturns400(t *testing.T) {
	srv := newTestServer(&mockAssessor{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/impact", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImpact_InvalidScaleReturns400(t *testing.T) {
	srv := newTestServer(&mockAssessor{}, nil)

	for _, scale := range []string{"0", "4", "banana"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/impact?location=SW1A1AA&scale="+scale, nil)

		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "scale=%s", scale)
	}
}

func TestImpact_ContractViolationReturns500(t *testing.T) {
	assessor := &mockAssessor{
		err: fmt.Errorf("%w: deprivationIndex out of range", domain.ErrInternalContractViolation),
	}
	srv := newTestServer(assessor, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/impact?location=SW1A1AA", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body["error"])
}
