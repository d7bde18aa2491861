package policy

import (
	"fmt"

	"github.com/go-logr/logr"
	utiljson "k8s.io/apimachinery/pkg/util/json"
)

// Name identifies the policy in log lines and metadata.
const Name = "disallow-palindrome-labels"

// Policy evaluates Pods against the palindrome label rule. It holds no state
// besides the log sink and is safe to reuse across invocations.
type Policy struct {
	log logr.Logger
}

// New returns a Policy that logs to logger. Every line is tagged with the
// policy name.
func New(logger logr.Logger) *Policy {
	return &Policy{log: logger.WithValues("policy", Name)}
}

// Validate decodes a serialized validation request, evaluates it, and returns
// the serialized ValidationResponse. A payload that is not a validation request
// is returned as an error wrapping ErrMalformedRequest.
func (p *Policy) Validate(payload []byte) ([]byte, error) {
	req, err := NewValidationRequest(payload)
	if err != nil {
		return nil, err
	}

	verdict, err := p.Review(req)
	if err != nil {
		return nil, err
	}

	return utiljson.Marshal(verdict.Response())
}

// Review evaluates an already decoded request.
func (p *Policy) Review(req *ValidationRequest) (Verdict, error) {
	if req == nil || req.Request == nil {
		return Verdict{}, fmt.Errorf("%w: missing request", ErrMalformedRequest)
	}

	p.log.Info("starting validation")

	ext, err := ExtractPod(req.Request.Object.Raw)
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to extract pod: %w", err)
	}

	switch ext.Outcome {
	case Matched:
		return p.Evaluate(ext.View), nil
	case ShapeMismatch:
		return p.AcceptOutOfScope(ext.Reason), nil
	default:
		return Verdict{}, fmt.Errorf("unhandled extraction outcome %s", ext.Outcome)
	}
}

// AcceptOutOfScope is the fallback for objects the policy cannot interpret as a
// Pod: they are accepted unconditionally. An object built to look almost like a
// Pod bypasses the label check through this path.
func (p *Policy) AcceptOutOfScope(reason error) Verdict {
	p.log.Info("cannot unmarshal resource", "reason", fmt.Sprint(reason))
	return Accept()
}

// Evaluate applies the label rule to view.
func (p *Policy) Evaluate(view ResourceView) Verdict {
	key, found := FindPalindromeLabel(view.Labels)
	if !found {
		p.log.Info("accepting resource")
		return Accept()
	}

	p.log.Info("rejecting pod", "name", view.Name)
	return Reject(fmt.Sprintf("pod %s with label %s is not accepted", view.Name, key))
}

// ProtocolVersion returns the serialized protocol identifier understood by the
// host.
func ProtocolVersion() ([]byte, error) {
	return utiljson.Marshal(protocolV1)
}

const protocolV1 = "v1"
