package monitoring

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope name registered with OTel.
const tracerName = "disallow-palindrome-labels"

// Tracer is the package-level OTel tracer for the policy host.
// It returns a noop tracer when no TracerProvider is registered.
var Tracer = otel.Tracer(tracerName)

// StartValidationSpan starts a span for one admission evaluation, annotated
// with the operation and the object's name, namespace and kind.
// Callers must call span.End() when the evaluation completes.
func StartValidationSpan(ctx context.Context, operation, name, namespace, kind string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, "PodLabelValidator.Handle",
		trace.WithAttributes(
			attribute.String("k8s.admission.operation", operation),
			attribute.String("k8s.resource.name", name),
			attribute.String("k8s.namespace", namespace),
			attribute.String("k8s.resource.kind", kind),
		),
	)
}

// RecordSpanError records an error on a span and sets the span status to Error.
// If err is nil, this is a no-op.
func RecordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
