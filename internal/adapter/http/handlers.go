package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
)

// maxImageBytes bounds the multipart upload so a single report cannot hold
// a handler goroutine on an unbounded read.
const maxImageBytes = 10 << 20

// handleSubmit accepts a fly-tipping report: a photo plus the location it was
// taken. Classification failure never rejects a report; the assessment falls
// back to the safe default and the report is still accepted.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form with image and location")
		return
	}

	location := r.FormValue("location")
	if location == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}
	key := domain.NormalizeLocation(location)

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read image")
		return
	}

	assessment := s.classify(r.Context(), image, key)
	reportID := uuid.NewString()

	s.logger.Info("report submitted",
		"reportId", reportID,
		"location", key.String(),
		"scale", int(assessment.Scale),
		"wasteType", string(assessment.WasteType),
	)

	writeJSON(w, http.StatusOK, submitResponse{
		ReportID:  reportID,
		Scale:     int(assessment.Scale),
		WasteType: string(assessment.WasteType),
		Status:    "received",
		ImpactPath: fmt.Sprintf("/api/impact?location=%s&scale=%d&wasteType=%s",
			url.QueryEscape(key.String()), assessment.Scale, url.QueryEscape(string(assessment.WasteType))),
	})
}

// classify runs the image classifier under its own deadline, falling back to
// the default assessment (medium scale, unknown type) when the classifier is
// absent or fails.
func (s *Server) classify(ctx context.Context, image []byte, key domain.LocationKey) domain.DumpingAssessment {
	fallback := domain.NewAssessment(domain.ScaleMedium, domain.WasteUnknown)
	if s.classifier == nil {
		s.metrics.ClassifierOutcomes.WithLabelValues("default").Inc()
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, s.classifyTimeout)
	defer cancel()

	assessment, err := s.classifier.Classify(ctx, image)
	if err != nil {
		s.logger.Warn("image classification failed, using default assessment",
			"location", key.String(), "error", err)
		s.metrics.ClassifierOutcomes.WithLabelValues("default").Inc()
		return fallback
	}

	s.metrics.ClassifierOutcomes.WithLabelValues("classified").Inc()
	return assessment
}

// handleImpact serves the aggregated impact for a location. Source failures
// are absorbed by the fallback policy; the only 5xx is an internal contract
// violation in the assembled record.
func (s *Server) handleImpact(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	location := q.Get("location")
	if location == "" {
		writeError(w, http.StatusBadRequest, "location query parameter is required")
		return
	}
	key := domain.NormalizeLocation(location)

	scale := domain.ScaleMedium
	if raw := q.Get("scale"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !domain.Scale(n).Valid() {
			writeError(w, http.StatusBadRequest, "scale must be 1, 2, or 3")
			return
		}
		scale = domain.Scale(n)
	}

	assessment := domain.NewAssessment(scale, domain.ParseWasteType(q.Get("wasteType")))

	record, narrative, err := s.assessor.Assess(r.Context(), key, assessment)
	if err != nil {
		if errors.Is(err, domain.ErrInternalContractViolation) {
			s.logger.Error("impact assessment produced invalid record", "location", key.String(), "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		s.logger.Error("impact assessment failed", "location", key.String(), "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, assembleImpact(record, narrative))
}
