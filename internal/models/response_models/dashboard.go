package response_models

type DashboardResponse struct {
	TotalAccounts    int64 `json:"total_accounts"`
	TotalRetreats    int64 `json:"total_retreats"`
	TotalBookings    int64 `json:"total_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	JournalEntries   int64 `json:"journal_entries"`
	ForumPosts       int64 `json:"forum_posts"`
}
