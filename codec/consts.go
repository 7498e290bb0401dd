package codec

// Size and count limits enforced throughout parsing and building. These
// mirror the wire-format limits a TagoTiP endpoint must defend against
// regardless of which side of the link it sits on.
const (
	// MaxVariables is the maximum number of variables in a single `[]` block.
	MaxVariables = 100

	// MaxMetaPairs is the maximum number of metadata key-value pairs in a
	// single `{}` block.
	MaxMetaPairs = 32

	// MaxTotalMeta is the maximum total metadata pairs across all variables
	// plus body-level metadata in a single frame, shared via the meta pool.
	MaxTotalMeta = 512

	// MaxVarNameLen is the maximum byte length of a variable name.
	MaxVarNameLen = 100

	// MaxSerialLen is the maximum byte length of a serial number.
	MaxSerialLen = 100

	// MaxGroupLen is the maximum byte length of a group name.
	MaxGroupLen = 100

	// MaxMetaKeyLen is the maximum byte length of a metadata key.
	MaxMetaKeyLen = 100

	// MaxUnitLen is the maximum byte length of a unit string.
	MaxUnitLen = 25

	// MaxFrameSize is the maximum plaintext frame size in bytes, excluding
	// an optional trailing newline.
	MaxFrameSize = 16384

	// AuthTokenLen is the length of an authorization token ("at" + 32 hex
	// characters).
	AuthTokenLen = 34

	// MaxUplinkFields is the maximum number of fields produced by
	// pipe-splitting an uplink frame (METHOD|!N|AUTH|SERIAL|BODY = 5, with
	// slack for malformed input).
	MaxUplinkFields = 8

	// MaxAckFields is the maximum number of fields produced by
	// pipe-splitting an ACK frame (ACK|!N|STATUS|DETAIL = 4).
	MaxAckFields = 4
)
