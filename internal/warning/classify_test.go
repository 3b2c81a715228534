package warning

import (
	"testing"

	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/jjCode01/xer-pro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_IsConstructionTask(t *testing.T) {
	root := testutil.DefaultRootWbsID + testutil.DefaultProjectID
	tables := testutil.NewSchedule(testutil.DefaultProjectID).
		AddWbs("11", root, "SUB", "Submittals & Approvals").
		AddWbs("12", "11", "STL", "Structural Steel").
		AddWbs("13", root, "BLD", "Building").
		AddTask("1", "A1", "Erect Steel Columns", testutil.WithWbs("12")).
		AddTask("2", "A2", "Install Roof Drains", testutil.WithWbs("13")).
		AddTask("3", "A3", "Install Submittal Log Binder", testutil.WithWbs("13")).
		AddTask("4", "A4", "Review Shop Drawings", testutil.WithWbs("13")).
		AddTask("5", "A5", "Cleanup", testutil.WithWbs("13")).
		AddTask("6", "A6", "POUR FOOTINGS", testutil.WithWbs("13")).
		Tables()
	s, err := schedule.Build(testutil.DefaultProjectID, tables)
	require.NoError(t, err)

	c := DefaultClassifier()
	tests := []struct {
		code string
		want bool
	}{
		{"A1", false}, // admin ancestor wins over the construction verb
		{"A2", true},
		{"A3", true}, // leading verb wins over an admin keyword
		{"A4", false},
		{"A5", true},
		{"A6", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.IsConstructionTask(s, s.TaskByCode(tt.code)), tt.code)
	}
}

func TestClassifier_CustomKeywords(t *testing.T) {
	tables := testutil.NewSchedule(testutil.DefaultProjectID).
		AddTask("1", "A1", "Mobilize Crane").
		Tables()
	s, err := schedule.Build(testutil.DefaultProjectID, tables)
	require.NoError(t, err)

	c := Classifier{AdminKeywords: []string{"mobilize"}}
	assert.False(t, c.IsConstructionTask(s, s.TaskByCode("A1")))
}
