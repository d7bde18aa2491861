package policy

import (
	"k8s.io/apimachinery/pkg/runtime"
)

// Verdict is the outcome of a single evaluation.
type Verdict struct {
	Accepted bool
	// Message is set on rejection only.
	Message string
}

// Accept returns an accepting verdict.
func Accept() Verdict {
	return Verdict{Accepted: true}
}

// Reject returns a rejecting verdict carrying message.
func Reject(message string) Verdict {
	return Verdict{Accepted: false, Message: message}
}

// ValidationResponse is the serialized answer to a validation call.
type ValidationResponse struct {
	Accepted bool    `json:"accepted"`
	Message  *string `json:"message,omitempty"`
	Code     *uint16 `json:"code,omitempty"`
	// MutatedObject is never populated: the policy only inspects.
	MutatedObject    *runtime.RawExtension `json:"mutated_object,omitempty"`
	AuditAnnotations map[string]string     `json:"audit_annotations,omitempty"`
	Warnings         []string              `json:"warnings,omitempty"`
}

// Response renders the verdict in its wire form.
func (v Verdict) Response() ValidationResponse {
	if v.Accepted {
		return ValidationResponse{Accepted: true}
	}
	msg := v.Message
	return ValidationResponse{Accepted: false, Message: &msg}
}
