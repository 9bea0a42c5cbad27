package models

// UpdateSettingsRequest binds both the JSON body of PUT /api/v1/config and
// the configuration form
type UpdateSettingsRequest struct {
	EndpointURL string `json:"endpointUrl" form:"endpoint_url"`
	AccessKey   string `json:"accessKey" form:"access_key"`
}
