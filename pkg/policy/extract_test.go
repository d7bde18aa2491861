package policy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	utiljson "k8s.io/apimachinery/pkg/util/json"
)

func mustMarshal(t *testing.T, obj any) []byte {
	t.Helper()
	raw, err := utiljson.Marshal(obj)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	return raw
}

func podObject(name string, labels map[string]string) *corev1.Pod {
	return &corev1.Pod{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Pod"},
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default", Labels: labels},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{{Name: "nginx", Image: "nginx"}},
		},
	}
}

func TestExtractPod(t *testing.T) {
	t.Parallel()

	deployment := &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: metav1.ObjectMeta{
			Name:   "nginx",
			Labels: map[string]string{"level": "level"},
		},
	}
	configMap := &corev1.ConfigMap{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: metav1.ObjectMeta{Name: "cfg", Labels: map[string]string{"a": "b"}},
	}

	tests := map[string]struct {
		raw         []byte
		wantOutcome Outcome
		wantView    ResourceView
	}{
		"Matched: pod with labels": {
			raw:         mustMarshal(t, podObject("nginx", map[string]string{"app": "nginx"})),
			wantOutcome: Matched,
			wantView:    ResourceView{Name: "nginx", Labels: map[string]string{"app": "nginx"}},
		},
		"Matched: pod without labels defaults to empty map": {
			raw:         mustMarshal(t, podObject("nginx", nil)),
			wantOutcome: Matched,
			wantView:    ResourceView{Name: "nginx", Labels: map[string]string{}},
		},
		"Matched: unknown fields are ignored": {
			raw:         []byte(`{"apiVersion":"v1","kind":"Pod","metadata":{"name":"nginx"},"extra":{"x":1}}`),
			wantOutcome: Matched,
			wantView:    ResourceView{Name: "nginx", Labels: map[string]string{}},
		},
		"ShapeMismatch: deployment": {
			raw:         mustMarshal(t, deployment),
			wantOutcome: ShapeMismatch,
		},
		"ShapeMismatch: configmap in the core group": {
			raw:         mustMarshal(t, configMap),
			wantOutcome: ShapeMismatch,
		},
		"Matched: apiVersion and kind missing": {
			raw:         []byte(`{"metadata":{"name":"nginx","labels":{"level":"x"}}}`),
			wantOutcome: Matched,
			wantView:    ResourceView{Name: "nginx", Labels: map[string]string{"level": "x"}},
		},
		"Matched: kind missing": {
			raw:         []byte(`{"apiVersion":"v1","metadata":{"name":"nginx","labels":{"a":"b"}}}`),
			wantOutcome: Matched,
			wantView:    ResourceView{Name: "nginx", Labels: map[string]string{"a": "b"}},
		},
		"Matched: apiVersion missing": {
			raw:         []byte(`{"kind":"Pod","metadata":{"name":"nginx"}}`),
			wantOutcome: Matched,
			wantView:    ResourceView{Name: "nginx", Labels: map[string]string{}},
		},
		"Matched: explicit empty name": {
			raw:         []byte(`{"apiVersion":"v1","kind":"Pod","metadata":{"name":"","labels":{"app":"x"}}}`),
			wantOutcome: Matched,
			wantView:    ResourceView{Name: "", Labels: map[string]string{"app": "x"}},
		},
		"ShapeMismatch: other kind without apiVersion": {
			raw:         []byte(`{"kind":"Deployment","metadata":{"name":"nginx","labels":{"a":"b"}}}`),
			wantOutcome: ShapeMismatch,
		},
		"ShapeMismatch: other apiVersion without kind": {
			raw:         []byte(`{"apiVersion":"apps/v1","metadata":{"name":"nginx","labels":{"a":"b"}}}`),
			wantOutcome: ShapeMismatch,
		},
		"ShapeMismatch: kind missing and labels of the wrong type": {
			raw:         []byte(`{"metadata":{"name":"nginx","labels":"level"}}`),
			wantOutcome: ShapeMismatch,
		},
		"ShapeMismatch: unregistered kind": {
			raw:         []byte(`{"apiVersion":"example.com/v1","kind":"Widget","metadata":{"name":"w"}}`),
			wantOutcome: ShapeMismatch,
		},
		"ShapeMismatch: labels of the wrong type": {
			raw:         []byte(`{"apiVersion":"v1","kind":"Pod","metadata":{"name":"nginx","labels":["level"]}}`),
			wantOutcome: ShapeMismatch,
		},
		"ShapeMismatch: label value of the wrong type": {
			raw:         []byte(`{"apiVersion":"v1","kind":"Pod","metadata":{"name":"nginx","labels":{"level":1}}}`),
			wantOutcome: ShapeMismatch,
		},
		"ShapeMismatch: not json": {
			raw:         []byte(`{not json`),
			wantOutcome: ShapeMismatch,
		},
		"ShapeMismatch: empty object": {
			raw:         nil,
			wantOutcome: ShapeMismatch,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractPod(tc.raw)
			if err != nil {
				t.Fatalf("ExtractPod() unexpected error: %v", err)
			}
			if got.Outcome != tc.wantOutcome {
				t.Fatalf("Outcome = %s, want %s (reason: %v)", got.Outcome, tc.wantOutcome, got.Reason)
			}

			switch got.Outcome {
			case Matched:
				if diff := cmp.Diff(tc.wantView, got.View); diff != "" {
					t.Errorf("View mismatch (-want +got):\n%s", diff)
				}
			case ShapeMismatch:
				if got.Reason == nil {
					t.Error("ShapeMismatch without a reason")
				}
			}
		})
	}
}

func TestExtractPod_MissingName(t *testing.T) {
	t.Parallel()

	tests := map[string][]byte{
		"name omitted":          mustMarshal(t, podObject("", map[string]string{"level": "level"})),
		"name null":             []byte(`{"apiVersion":"v1","kind":"Pod","metadata":{"name":null}}`),
		"no metadata":           []byte(`{"apiVersion":"v1","kind":"Pod"}`),
		"name omitted, no kind": []byte(`{"metadata":{"labels":{"a":"b"}}}`),
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ExtractPod(raw)
			if !errors.Is(err, ErrMissingName) {
				t.Fatalf("ExtractPod() error = %v, want %v", err, ErrMissingName)
			}
		})
	}
}

func TestExtractPod_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	raw := mustMarshal(t, podObject("nginx", map[string]string{"app": "nginx"}))
	orig := append([]byte(nil), raw...)

	if _, err := ExtractPod(raw); err != nil {
		t.Fatalf("ExtractPod() unexpected error: %v", err)
	}
	if diff := cmp.Diff(orig, raw); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestResourceView_SortedLabelKeys(t *testing.T) {
	t.Parallel()

	view := ResourceView{Labels: map[string]string{"tier": "", "app": "", "level": "", "": ""}}
	want := []string{"", "app", "level", "tier"}
	if diff := cmp.Diff(want, view.SortedLabelKeys()); diff != "" {
		t.Errorf("SortedLabelKeys() mismatch (-want +got):\n%s", diff)
	}
}
