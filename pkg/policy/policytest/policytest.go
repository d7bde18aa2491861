// Package policytest runs admission request fixtures through a policy entry
// point and checks the verdict.
package policytest

import (
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	utiljson "k8s.io/apimachinery/pkg/util/json"

	"github.com/numtide/disallow-palindrome-labels/pkg/policy"
)

// ValidateFunc is the signature of a serialized validation entry point.
type ValidateFunc func(payload []byte) ([]byte, error)

// Testcase describes one fixture evaluation.
type Testcase struct {
	Name string
	// FixtureFile holds an admission/v1 AdmissionRequest in JSON.
	FixtureFile              string
	ExpectedValidationResult bool
	Settings                 policy.Settings
}

type envelope struct {
	Request  runtime.RawExtension `json:"request"`
	Settings policy.Settings      `json:"settings"`
}

// Payload wraps the fixture in a validation request envelope.
func (tc *Testcase) Payload() ([]byte, error) {
	raw, err := os.ReadFile(tc.FixtureFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", tc.FixtureFile, err)
	}
	return utiljson.Marshal(envelope{
		Request:  runtime.RawExtension{Raw: raw},
		Settings: tc.Settings,
	})
}

// Eval invokes fn with the fixture and decodes its response. It returns an
// error when fn fails or when the verdict differs from ExpectedValidationResult.
func (tc *Testcase) Eval(fn ValidateFunc) (*policy.ValidationResponse, error) {
	payload, err := tc.Payload()
	if err != nil {
		return nil, err
	}

	out, err := fn(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: validation failed: %w", tc.Name, err)
	}

	resp := &policy.ValidationResponse{}
	if err := utiljson.Unmarshal(out, resp); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", tc.Name, err)
	}

	if resp.Accepted != tc.ExpectedValidationResult {
		return resp, fmt.Errorf(
			"%s: got accepted=%t, want %t",
			tc.Name, resp.Accepted, tc.ExpectedValidationResult,
		)
	}

	return resp, nil
}
