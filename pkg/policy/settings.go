package policy

import (
	utiljson "k8s.io/apimachinery/pkg/util/json"
)

// Settings is the policy configuration. The policy has no tunables, so every
// settings document is valid.
type Settings struct{}

// Valid reports whether the settings can be used.
func (Settings) Valid() error {
	return nil
}

// SettingsValidationResponse is the serialized answer to a settings check.
type SettingsValidationResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateSettings answers a settings validation call. The payload is not
// inspected: there are no fields to check.
func ValidateSettings(_ []byte) ([]byte, error) {
	resp := SettingsValidationResponse{Valid: true}
	if err := (Settings{}).Valid(); err != nil {
		resp = SettingsValidationResponse{Valid: false, Message: err.Error()}
	}
	return utiljson.Marshal(resp)
}
