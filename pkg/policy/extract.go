package policy

import (
	"errors"
	"fmt"
	"slices"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utiljson "k8s.io/apimachinery/pkg/util/json"
	"k8s.io/client-go/kubernetes/scheme"
)

// ErrMissingName is returned when an object decodes as a Pod but carries no
// name. A conforming Pod always has one.
var ErrMissingName = errors.New("pod has no name")

// Outcome tags the result of an extraction.
type Outcome int

const (
	// ShapeMismatch means the object is not a Pod this policy can interpret.
	ShapeMismatch Outcome = iota
	// Matched means the object is a Pod and View is populated.
	Matched
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "Matched"
	case ShapeMismatch:
		return "ShapeMismatch"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ResourceView is the part of a Pod the policy looks at.
type ResourceView struct {
	Name   string
	Labels map[string]string
}

// SortedLabelKeys returns the label keys in ascending order.
func (v ResourceView) SortedLabelKeys() []string {
	keys := make([]string, 0, len(v.Labels))
	for k := range v.Labels {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Extraction is the result of interpreting a request object.
type Extraction struct {
	Outcome Outcome
	// View is valid when Outcome is Matched.
	View ResourceView
	// Reason explains a ShapeMismatch.
	Reason error
}

// ExtractPod decodes raw into a ResourceView. Objects of another kind, or that
// do not decode as a v1 Pod at all, yield a ShapeMismatch rather than an error.
// Pod-shaped objects that omit apiVersion or kind are still read as a Pod; only
// an explicit, different apiVersion or kind puts an object out of scope.
// The only error is ErrMissingName.
func ExtractPod(raw []byte) (Extraction, error) {
	if len(raw) == 0 {
		return Extraction{Outcome: ShapeMismatch, Reason: errors.New("empty object")}, nil
	}

	pod, err := decodePod(raw)
	if err != nil {
		return Extraction{Outcome: ShapeMismatch, Reason: err}, nil
	}

	// A typed decode cannot tell "name": "" from an absent name.
	named := &struct {
		Metadata struct {
			Name *string `json:"name"`
		} `json:"metadata"`
	}{}
	if err := utiljson.Unmarshal(raw, named); err != nil || named.Metadata.Name == nil {
		return Extraction{}, ErrMissingName
	}

	labels := pod.Labels
	if labels == nil {
		labels = map[string]string{}
	}

	return Extraction{
		Outcome: Matched,
		View:    ResourceView{Name: pod.Name, Labels: labels},
	}, nil
}

func decodePod(raw []byte) (*corev1.Pod, error) {
	obj, gvk, err := scheme.Codecs.UniversalDeserializer().Decode(raw, nil, nil)
	switch {
	case err == nil:
		pod, ok := obj.(*corev1.Pod)
		if !ok {
			return nil, fmt.Errorf("expected Pod, got %s", gvk.Kind)
		}
		return pod, nil
	case runtime.IsMissingKind(err), runtime.IsMissingVersion(err):
		return decodeUntypedPod(raw)
	default:
		return nil, err
	}
}

// decodeUntypedPod reads an object that lacks apiVersion or kind. Whichever of
// the two is present must still name a v1 Pod.
func decodeUntypedPod(raw []byte) (*corev1.Pod, error) {
	pod := &corev1.Pod{}
	if err := utiljson.Unmarshal(raw, pod); err != nil {
		return nil, err
	}
	if pod.APIVersion != "" && pod.APIVersion != podGVK.GroupVersion().String() {
		return nil, fmt.Errorf("expected apiVersion %s, got %s", podGVK.GroupVersion(), pod.APIVersion)
	}
	if pod.Kind != "" && pod.Kind != podGVK.Kind {
		return nil, fmt.Errorf("expected Pod, got %s", pod.Kind)
	}
	return pod, nil
}

var podGVK = corev1.SchemeGroupVersion.WithKind("Pod")
