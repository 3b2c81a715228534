package contract

import (
	"testing"

	"github.com/jjCode01/xer-pro/internal/importer"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/jjCode01/xer-pro/internal/warning"
	"github.com/stretchr/testify/assert"
)

// --- Source constructor defaults ---

func TestNewSource_SetsDefaults(t *testing.T) {
	src := NewSource("update.xer")

	assert.Equal(t, "update.xer", src.Path)
	assert.Equal(t, importer.EncodingCP1252, src.Encoding)
	assert.Empty(t, src.Project)
}

// --- AnalyzeRequest constructor defaults ---

func TestNewAnalyzeRequest_SetsDefaults(t *testing.T) {
	req := NewAnalyzeRequest("update.xer")

	assert.Equal(t, "update.xer", req.Source.Path)
	assert.Equal(t, schedule.DefaultFloatThresholds(), req.FloatThresholds)
	assert.Equal(t, 10, req.Warnings.LongLagDays)
	assert.Equal(t, 20, req.Warnings.LongDurationDays)
	assert.Equal(t, warning.DefaultClassifier(), req.Warnings.Classifier)
	assert.True(t, req.IncludeWarnings)
	assert.True(t, req.IncludeCashFlow)
	assert.True(t, req.IncludeWorkFlow)
	assert.True(t, req.WorkFlowStart.IsZero())
	assert.True(t, req.WorkFlowEnd.IsZero())
}

// --- CompareRequest constructor defaults ---

func TestNewCompareRequest_SetsDefaults(t *testing.T) {
	req := NewCompareRequest("jan.xer", "feb.xer")

	assert.Equal(t, "jan.xer", req.First.Path)
	assert.Equal(t, "feb.xer", req.Second.Path)
	assert.Equal(t, importer.EncodingCP1252, req.Second.Encoding)
	assert.Equal(t, schedule.DefaultFloatThresholds(), req.FloatThresholds)
}

// --- Error types ---

func TestScheduleError_ErrorString(t *testing.T) {
	err := &ScheduleError{
		Code:    ErrUnsupportedSource,
		Message: `unsupported file type ".csv"`,
	}
	assert.Equal(t, `UNSUPPORTED_SOURCE: unsupported file type ".csv"`, err.Error())
}
