package policy

import (
	"errors"
	"fmt"

	admissionv1 "k8s.io/api/admission/v1"
	utiljson "k8s.io/apimachinery/pkg/util/json"
)

// ErrMalformedRequest is returned when the payload cannot be decoded as a
// validation request. It signals a contract violation between host and policy.
var ErrMalformedRequest = errors.New("malformed validation request")

// ValidationRequest is the envelope delivered by the host for each validation.
type ValidationRequest struct {
	Request  *admissionv1.AdmissionRequest `json:"request"`
	Settings Settings                      `json:"settings"`
}

// NewValidationRequest decodes a serialized validation request.
func NewValidationRequest(payload []byte) (*ValidationRequest, error) {
	req := &ValidationRequest{}
	if err := utiljson.Unmarshal(payload, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if req.Request == nil {
		return nil, fmt.Errorf("%w: missing request", ErrMalformedRequest)
	}
	return req, nil
}
