package policy

import (
	admissionregistrationv1 "k8s.io/api/admissionregistration/v1"
)

// ExecutionMode names the runtime contract the policy is built for.
const ExecutionMode = "kubewarden-wapc"

// Metadata describes how the policy is to be registered with a policy server.
type Metadata struct {
	Rules         []admissionregistrationv1.RuleWithOperations `json:"rules"`
	Mutating      bool                                          `json:"mutating"`
	ContextAware  bool                                          `json:"contextAware"`
	ExecutionMode string                                        `json:"executionMode"`
	Annotations   map[string]string                             `json:"annotations,omitempty"`
}

// DefaultMetadata returns the registration metadata: Pods on CREATE and UPDATE,
// validating only.
func DefaultMetadata() Metadata {
	return Metadata{
		Rules: []admissionregistrationv1.RuleWithOperations{
			{
				Operations: []admissionregistrationv1.OperationType{
					admissionregistrationv1.Create,
					admissionregistrationv1.Update,
				},
				Rule: admissionregistrationv1.Rule{
					APIGroups:   []string{""},
					APIVersions: []string{"v1"},
					Resources:   []string{"pods"},
				},
			},
		},
		Mutating:      false,
		ContextAware:  false,
		ExecutionMode: ExecutionMode,
		Annotations: map[string]string{
			"io.kubewarden.policy.title":       Name,
			"io.kubewarden.policy.description": "Reject Pods that carry a label key which is a palindrome",
			"io.kubewarden.policy.license":     "Apache-2.0",
		},
	}
}
