package models

type UpdateSettingsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Phase   string `json:"phase"`
}
