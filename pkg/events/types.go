package events

const (
	UserLogin           = "USER_LOGIN"
	UserRegistered      = "USER_REGISTERED"
	UserLogout          = "USER_LOGOUT"
	AnalysisCompleted   = "ANALYSIS_COMPLETED"
	HistoryEntryDeleted = "HISTORY_ENTRY_DELETED"
	ReportEmailed       = "REPORT_EMAILED"
)

// All lists every event type the backend emits.
var All = []string{
	UserLogin,
	UserRegistered,
	UserLogout,
	AnalysisCompleted,
	HistoryEntryDeleted,
	ReportEmailed,
}
