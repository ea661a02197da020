package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

const (
	major = 0
	minor = 2
	patch = 0

	// Oldest version the contract can be updated from. 0.1.x contracts keep
	// contacts in the legacy layout and are migrated on update.
	prevMajor = 0
	prevMinor = 1
	prevPatch = 0

	// Version is the current contract version encoded as
	// major*1_000_000 + minor*1_000 + patch.
	Version = major*1_000_000 + minor*1_000 + patch

	// PrevVersion is the encoded oldest supported version.
	PrevVersion = prevMajor*1_000_000 + prevMinor*1_000 + prevPatch

	// ErrVersionMismatch is thrown by CheckVersion if the contract is too old
	// to be updated.
	ErrVersionMismatch = "previous version mismatch"

	// ErrAlreadyUpdated is thrown by CheckVersion if the contract is already
	// of the current version.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion panics if the contract of version from can't be updated to
// the current one.
func CheckVersion(from int) {
	if from < PrevVersion {
		panic(ErrVersionMismatch + ": expected >=" + std.Itoa10(PrevVersion))
	}
	if from == Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa10(Version))
	}
}

// AppendVersion appends current contract version to the update data passed
// to _deploy.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
