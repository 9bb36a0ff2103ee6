package dto

import "plagiarismpro-be/pkg/insight"

type HistoryItemResponse struct {
	HistoryEntryResponse
	Label           string `json:"label"`
	BadgeVariant    string `json:"badgeVariant"`
	ValidPercentage int    `json:"validPercentage"`
}

type HistoryListResponse struct {
	Entries []HistoryItemResponse `json:"entries"`
	Stats   insight.Stats         `json:"stats"`
}
