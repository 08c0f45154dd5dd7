package collectorgh

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/agentstation/livingdoc/pkg/adapters"
)

// Confirmed compatible producer version range.
const (
	// ConfirmedMin is the lowest confirmed-compatible producer version,
	// inclusive.
	ConfirmedMin = "1.0.0"

	// ConfirmedMax is the upper bound of the confirmed-compatible range,
	// exclusive.
	ConfirmedMax = "2.0.0"
)

// CheckCompatibility compares a producer version string against the
// confirmed-compatible range [ConfirmedMin, ConfirmedMax) using semantic
// version precedence. Pre-release and build-metadata suffixes are accepted.
//
// A compatible version yields no warnings. An out-of-range version yields
// exactly one VERSION_MISMATCH warning; an unparsable one yields exactly
// one INVALID_VERSION warning. Warnings never abort the pipeline.
func CheckCompatibility(version string) []adapters.Warning {
	context := versionFieldPath

	parsed, err := semver.NewVersion(version)
	if err != nil {
		return []adapters.Warning{{
			Code: adapters.WarningCodeInvalidVersion,
			Message: fmt.Sprintf(
				"Producer version %q is not a valid semantic version", version),
			Context: &context,
		}}
	}

	minVersion := semver.MustParse(ConfirmedMin)
	maxVersion := semver.MustParse(ConfirmedMax)

	if parsed.Compare(minVersion) >= 0 && parsed.LessThan(maxVersion) {
		return nil
	}

	return []adapters.Warning{{
		Code: adapters.WarningCodeVersionMismatch,
		Message: fmt.Sprintf(
			"Producer version %s is outside confirmed range >=%s,<%s",
			version, ConfirmedMin, ConfirmedMax),
		Context: &context,
	}}
}
