// Package handlers exposes the disallow-palindrome-labels policy as a
// controller-runtime 'admission.Handler'.
//
// The handler is a thin adapter: it hands the incoming AdmissionRequest to
// pkg/policy, maps the verdict onto an admission response, and records
// metrics and a trace span through pkg/monitoring. It never patches the
// object and it does not start a server; a host that already runs a
// controller-runtime webhook server registers it under its own path:
//
//	server.Register("/validate-pods-palindrome-labels", &webhook.Admission{
//	    Handler: handlers.NewPodLabelValidator(),
//	})
package handlers
