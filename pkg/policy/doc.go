/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package policy implements the disallow-palindrome-labels admission decision.
//
// A Pod is rejected when any of its label keys reads the same forwards and
// backwards. Everything else is accepted.
//
// The package is split in two stages that run once per invocation:
//
//  1. Extraction: the request object is decoded with the client-go scheme into a
//     [ResourceView]. The outcome is an [Extraction] that is either Matched or
//     ShapeMismatch. Objects that are not a v1 Pod fall out of scope and are
//     accepted (see [AcceptOutOfScope]).
//
//  2. Detection: [FindPalindromeLabel] scans the label keys in sorted order and
//     [Policy.Evaluate] turns the first hit into a rejection.
//
// # Entry points
//
// A host invokes the policy through three functions operating on serialized
// payloads:
//
//   - [Policy.Validate]: validation request in, [ValidationResponse] out.
//   - [ValidateSettings]: always valid, the policy has no settings.
//   - [ProtocolVersion]: the fixed protocol identifier.
//
// The logger is injected through [New]; there is no package-level logging state.
package policy
