package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rubytogether/time-card/internal/report"
	"github.com/rubytogether/time-card/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Monthly serves /report/monthly/{period} where period is "YYYY-MM" with
// an optional ".json" suffix.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	parts, format, err := parsePeriod(r.PathValue("period"), 2)
	if err != nil {
		respondError(w, err)
		return
	}

	rep, err := h.reportService.Monthly(parts[0], parts[1])
	if err != nil {
		respondError(w, err)
		return
	}

	respondReport(w, rep, format)
}

// Biweekly serves /report/biweekly/{period} where period is "YYYY-MM-DD"
// with an optional ".json" suffix.
func (h *ReportHandler) Biweekly(w http.ResponseWriter, r *http.Request) {
	parts, format, err := parsePeriod(r.PathValue("period"), 3)
	if err != nil {
		respondError(w, err)
		return
	}

	rep, err := h.reportService.Biweekly(parts[0], parts[1], parts[2])
	if err != nil {
		respondError(w, err)
		return
	}

	respondReport(w, rep, format)
}

func respondReport(w http.ResponseWriter, rep *report.Report, format report.Format) {
	switch format {
	case report.FormatJSON:
		groups := rep.Groups
		if groups == nil {
			groups = []report.Group{}
		}
		respondJSON(w, http.StatusOK, groups)
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(rep.Text()))
	}
}

// parsePeriod splits a dash-separated period segment like "2024-03" or
// "2024-03-05.json" into its numeric parts and output format.
func parsePeriod(period string, n int) ([]int, report.Format, error) {
	format := report.FormatText
	if i := strings.LastIndexByte(period, '.'); i >= 0 {
		format = report.ParseFormat(period[i+1:])
		period = period[:i]
	}

	fields := strings.Split(period, "-")
	if len(fields) != n {
		return nil, format, fmt.Errorf("%w: %q", report.ErrInvalidDate, period)
	}

	parts := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, format, fmt.Errorf("%w: %q", report.ErrInvalidDate, period)
		}
		parts[i] = v
	}

	return parts, format, nil
}
