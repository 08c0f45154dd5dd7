// Package collectorgh implements the adapter for the
// AbsaOSS/living-doc-collector-gh issue export format. It detects payloads
// by producer identity, checks producer version compatibility, and parses
// raw issue records into the intermediate representation.
package collectorgh

import (
	"github.com/agentstation/livingdoc/pkg/adapters"
	"github.com/agentstation/livingdoc/pkg/errors"
)

const (
	// Name is the adapter identifier used in configuration and the audit
	// trail extension namespace.
	Name = "collector-gh"

	// producerName is the generator identity this adapter recognizes.
	producerName = "AbsaOSS/living-doc-collector-gh"

	// versionFieldPath is the dotted path of the producer version field,
	// named verbatim in extraction errors.
	versionFieldPath = "metadata.generator.version"

	// systemPrefix tags item IDs and source-set entries.
	systemPrefix = "github"

	// fallbackRepository is used for item IDs when the payload declares
	// no repositories.
	fallbackRepository = "unknown/repo"
)

// Adapter is the collector-gh detector and parser pair. It is stateless;
// a single instance can be shared freely.
type Adapter struct{}

// New returns the collector-gh adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return Name
}

// CanHandle reports whether the payload was produced by
// living-doc-collector-gh. Lookup failures of any kind report "not
// recognized" rather than an error.
func (a *Adapter) CanHandle(payload map[string]any) bool {
	name, ok := adapters.LookupString(payload, "metadata", "generator", "name")
	return ok && name == producerName
}

// ExtractVersion reads the producer version from the payload. Unlike
// detection, a missing, mistyped, or empty version is an adapter error
// naming the expected field path.
func ExtractVersion(payload map[string]any) (string, error) {
	version, ok := adapters.LookupString(payload, "metadata", "generator", "version")
	if !ok {
		return "", errors.NewAdapterError(Name,
			"missing or invalid "+versionFieldPath+" in payload", nil)
	}
	if version == "" {
		return "", errors.NewAdapterError(Name,
			"producer version is empty in "+versionFieldPath, nil)
	}
	return version, nil
}
