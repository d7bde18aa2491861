// Package monitoring provides Prometheus metrics and tracing helpers for hosts
// that run the disallow-palindrome-labels policy behind an admission handler.
//
// All metrics follow the naming convention palindrome_policy_<metric>_<unit>
// and are registered against controller-runtime's default Prometheus registry
// on import. The policy package itself never touches this package: counters
// live with the host, the decision stays stateless.
//
// Usage in admission handlers:
//
//	ctx, span := monitoring.StartValidationSpan(ctx, "CREATE", name, namespace, kind)
//	defer span.End()
//	monitoring.RecordValidation("CREATE", monitoring.ResultRejected, elapsed)
package monitoring
