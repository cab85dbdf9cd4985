package request

// SetSettingRequest is the request body for storing a setting value.
type SetSettingRequest struct {
	Value string `json:"value"`
}
