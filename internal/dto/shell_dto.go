package dto

type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type ShellResponse struct {
	Nav           []NavItem        `json:"nav"`
	Profile       *ProfileResponse `json:"profile"`
	Authenticated bool             `json:"authenticated"`
}
