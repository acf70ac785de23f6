package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/dart-analysis/internal/model"
)

func TestAnalyzeParams(t *testing.T) {
	analyzeCorp = "00126380"
	analyzeYear = "2024"
	analyzeReport = "11012"
	defer func() {
		analyzeCorp, analyzeYear, analyzeReport = "", "", ""
	}()

	p := analyzeParams()

	assert.Equal(t, "00126380", p.CorpCode)
	assert.Equal(t, "2024", p.Year)
	assert.Equal(t, model.ReportHalf, p.Report)
}

func TestAnalyzeParams_EmptyFlagsLeaveDefaultsToService(t *testing.T) {
	p := analyzeParams()

	assert.Empty(t, p.Year)
	assert.Equal(t, model.ReportCode(""), p.Report)
}
