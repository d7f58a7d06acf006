package dto

// SetSettingRequest entrada para escribir una preferencia.
type SetSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// SettingResponse salida de una preferencia.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
