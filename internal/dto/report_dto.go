package dto

type SubmitReportRequest struct {
	ShortsCreated     *bool  `json:"shorts_created"`
	CopyrightIssue    *bool  `json:"copyright_issue"`
	ShortsDeleted     *bool  `json:"shorts_deleted"`
	MonthsSinceUpload *int   `json:"months_since_upload"`
	Comment           string `json:"comment"`
}

type AddChannelRequest struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	ChannelURL  string `json:"channel_url"`
	RiskLevel   string `json:"risk_level"`
	Reason      string `json:"reason"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}
