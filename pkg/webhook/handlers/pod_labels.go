package handlers

import (
	"context"
	"net/http"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	"github.com/numtide/disallow-palindrome-labels/pkg/monitoring"
	"github.com/numtide/disallow-palindrome-labels/pkg/policy"
)

// +kubebuilder:webhook:path=/validate-pods-palindrome-labels,mutating=false,failurePolicy=fail,sideEffects=None,groups="",resources=pods,verbs=create;update,versions=v1,name=vpalindromelabels.kb.io,admissionReviewVersions=v1

// PodLabelValidator rejects Pods carrying a palindrome label key.
type PodLabelValidator struct{}

var _ admission.Handler = &PodLabelValidator{}

// NewPodLabelValidator creates a new validator for Pod labels.
func NewPodLabelValidator() *PodLabelValidator {
	return &PodLabelValidator{}
}

// Handle implements admission.Handler.
func (v *PodLabelValidator) Handle(ctx context.Context, req admission.Request) admission.Response {
	start := time.Now()
	operation := string(req.Operation)

	ctx, span := monitoring.StartValidationSpan(ctx, operation, req.Name, req.Namespace, req.Kind.Kind)
	defer span.End()

	logger := log.FromContext(ctx).WithName("pod-label-validator")

	verdict, err := policy.New(logger).Review(&policy.ValidationRequest{
		Request: &req.AdmissionRequest,
	})
	if err != nil {
		monitoring.RecordSpanError(span, err)
		monitoring.RecordValidation(operation, monitoring.ResultError, time.Since(start))
		return admission.Errored(http.StatusBadRequest, err)
	}

	if !verdict.Accepted {
		monitoring.RecordValidation(operation, monitoring.ResultRejected, time.Since(start))
		return admission.Denied(verdict.Message)
	}

	monitoring.RecordValidation(operation, monitoring.ResultAccepted, time.Since(start))
	return admission.Allowed("")
}
