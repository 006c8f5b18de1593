package calculation

import (
	"sync"
	"testing"

	"github.com/solarpipe/commission/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger_NilIsNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, NewZapLogger(nil))
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(nil)
	assert.Equal(t, NopLogger{}, engine.Logger)
}

func TestEngineLogsFailSoftCoercions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	engine := NewEngine()
	engine.SetLogger(NewZapLogger(zap.New(core)))

	b := engine.ComputeBreakdown(domain.Project{ID: "p9", SystemSize: "large", GrossPPW: "4"}, "Boss")
	assert.True(t, b.FinalCommission.IsZero())
	assert.False(t, engine.Qualifies(domain.Project{ID: "p10", InstallDate: "soon"}, 2024))

	assert.Equal(t, 1, logs.FilterMessageSnippet("not numeric").Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("unknown pay type").Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("not recognized").Len())
	for _, entry := range logs.All() {
		assert.Equal(t, zapcore.DebugLevel, entry.Level)
		assert.Equal(t, "calculation", entry.LoggerName)
	}
}

func TestEngineIsSafeForConcurrentUse(t *testing.T) {
	engine := NewEngine()
	projects := sampleProjects()
	want := engine.CalculateTeamEarnings(projects, 2024, domain.PayTypeVet)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = engine.CalculateTeamEarnings(projects, 2024, domain.PayTypeVet).String()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.String(), got)
	}
}
