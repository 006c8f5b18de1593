package calculation

import "github.com/solarpipe/commission/internal/domain"

// ResolvePayType infers a rep's tier from how many of their projects are
// paid, across all years. It is recomputed from the supplied collection on
// every call; nothing is remembered between calls.
func (e *Engine) ResolvePayType(userID string, projects []domain.Project) domain.PayType {
	return e.Policy.TierForPaidCount(CountPaidProjects(userID, projects))
}

// CountPaidProjects counts the user's projects whose status is paid.
func CountPaidProjects(userID string, projects []domain.Project) int {
	count := 0
	for _, p := range projects {
		if p.UserID == userID && p.Status == domain.StatusPaid {
			count++
		}
	}
	return count
}

// paidCountsByUser counts paid projects for every user in one pass.
func paidCountsByUser(projects []domain.Project) map[string]int {
	counts := make(map[string]int)
	for _, p := range projects {
		if p.Status == domain.StatusPaid {
			counts[p.UserID]++
		}
	}
	return counts
}
