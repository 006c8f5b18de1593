package calculation

import (
	"fmt"
	"testing"

	"github.com/solarpipe/commission/internal/domain"
	"github.com/stretchr/testify/assert"
)

func paidProjects(userID string, n int) []domain.Project {
	out := make([]domain.Project, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Project{ID: fmt.Sprintf("%s-%d", userID, i), UserID: userID, Status: domain.StatusPaid})
	}
	return out
}

func TestResolvePayType(t *testing.T) {
	tests := []struct {
		name string
		paid int
		want domain.PayType
	}{
		{"no history", 0, domain.PayTypeRookie},
		{"three paid", 3, domain.PayTypeRookie},
		{"just below vet", 9, domain.PayTypeRookie},
		{"vet threshold", 10, domain.PayTypeVet},
		{"twelve paid", 12, domain.PayTypeVet},
		{"just below pro", 19, domain.PayTypeVet},
		{"pro threshold", 20, domain.PayTypePro},
		{"twenty two paid", 22, domain.PayTypePro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePayType("rep-1", paidProjects("rep-1", tt.paid)))
		})
	}
}

func TestResolvePayType_OnlyCountsOwnPaidProjects(t *testing.T) {
	projects := paidProjects("rep-2", 25)
	for i := 0; i < 15; i++ {
		projects = append(projects, domain.Project{UserID: "rep-1", Status: domain.StatusPTO, InstallDate: "2024-01-01"})
	}
	projects = append(projects, paidProjects("rep-1", 9)...)

	assert.Equal(t, domain.PayTypeRookie, ResolvePayType("rep-1", projects))
	assert.Equal(t, domain.PayTypePro, ResolvePayType("rep-2", projects))
	assert.Equal(t, domain.PayTypeRookie, ResolvePayType("nobody", projects))
	assert.Equal(t, 9, CountPaidProjects("rep-1", projects))
}

func TestResolvePayType_IgnoresYears(t *testing.T) {
	projects := paidProjects("rep-1", 10)
	for i := range projects {
		projects[i].InstallDate = fmt.Sprintf("%d-06-01", 2015+i)
	}
	projects[0].InstallDate = ""
	assert.Equal(t, domain.PayTypeVet, ResolvePayType("rep-1", projects))
}

func TestResolvePayType_CustomThresholds(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.TierThresholds = domain.TierThresholds{Vet: 2, Pro: 4}
	engine := NewEngineWithPolicy(policy)

	assert.Equal(t, domain.PayTypeRookie, engine.ResolvePayType("rep", paidProjects("rep", 1)))
	assert.Equal(t, domain.PayTypeVet, engine.ResolvePayType("rep", paidProjects("rep", 3)))
	assert.Equal(t, domain.PayTypePro, engine.ResolvePayType("rep", paidProjects("rep", 4)))
}
