package grpc

import (
	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard"
)

type DashboardServer struct {
	Dashboard        *dashboard.Dashboard
	RateLimiterStore *dashboard.RateLimiterStore
}

// CheckClientLimiter takes one token from the client's bucket. Without a
// store every call is admitted.
func (s *DashboardServer) CheckClientLimiter(clientID string) bool {
	return s.RateLimiterStore.Allow(clientID)
}
