package domain

// DashboardStats backs the admin dashboard's statistic tiles.
type DashboardStats struct {
	TotalTheses      int32 `json:"total_theses"`
	TotalUsers       int32 `json:"total_users"`
	PendingRequests  int32 `json:"pending_requests"`
	ApprovedRequests int32 `json:"approved_requests"`
	ExpiredRequests  int32 `json:"expired_requests"`
}
