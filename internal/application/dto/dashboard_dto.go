package dto

// DashboardSummaryDTO resumen del panel. Los campos de Admin y de Resident se
// omiten cuando no aplican al rol.
type DashboardSummaryDTO struct {
	Role string `json:"role"`

	// Admin
	OccupiedRooms    int                 `json:"occupiedRooms,omitempty"`
	TotalRooms       int                 `json:"totalRooms,omitempty"`
	OccupancyPercent float64             `json:"occupancyPercent,omitempty"`
	TotalResidents   int                 `json:"totalResidents,omitempty"`
	RecentComplaints []ComplaintResponse `json:"recentComplaints,omitempty"`

	// Resident
	YourRoom      *int             `json:"yourRoom,omitempty"` // nil = asignación pendiente
	RoomPending   bool             `json:"roomPending,omitempty"`
	RecentNotices []NoticeResponse `json:"recentNotices,omitempty"`

	// Ambos
	ActiveIssues int `json:"activeIssues"`
	Notices      int `json:"notices"`
}
