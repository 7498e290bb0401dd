package codec

var errorCodeNames = map[string]ErrorCode{
	"invalid_token":       ErrInvalidToken,
	"invalid_method":      ErrInvalidMethodCode,
	"invalid_payload":     ErrInvalidPayload,
	"invalid_seq":         ErrInvalidSeqCode,
	"device_not_found":    ErrDeviceNotFound,
	"variable_not_found":  ErrVariableNotFound,
	"rate_limited":        ErrRateLimited,
	"auth_failed":         ErrAuthFailed,
	"unsupported_version": ErrUnsupportedVersion,
	"payload_too_large":   ErrPayloadTooLarge,
	"server_error":        ErrServerError,
}

// ParseAckStatus parses an ACK frame's status token.
func ParseAckStatus(s string) (AckStatus, bool) {
	switch s {
	case "OK":
		return AckOK, true
	case "PONG":
		return AckPong, true
	case "CMD":
		return AckCmd, true
	case "ERR":
		return AckErr, true
	default:
		return 0, false
	}
}

// ParseAckDetail parses an ACK frame's DETAIL field given the status it
// belongs to. OK carries either a count (all digits), a `[`-prefixed
// variables block, or a raw fallback; CMD carries a command string; ERR
// carries an error code (with the whole field kept verbatim as Text); and
// PONG carries whatever raw text is present.
func ParseAckDetail(status AckStatus, s string) (*AckDetail, bool) {
	switch status {
	case AckOK:
		if len(s) > 0 && s[0] == '[' {
			return &AckDetail{Kind: DetailVariables, Variables: s}, true
		}
		if v, ok := parseDecimalU64(s); ok && v <= 0xffffffff {
			return &AckDetail{Kind: DetailCount, Count: uint32(v)}, true
		}
		return &AckDetail{Kind: DetailRaw, Raw: s}, true
	case AckCmd:
		return &AckDetail{Kind: DetailCommand, Command: s}, true
	case AckErr:
		code, ok := errorCodeNames[s]
		if !ok {
			code = ErrUnknown
		}
		return &AckDetail{Kind: DetailError, ErrorCode: code, Text: s}, true
	default:
		return &AckDetail{Kind: DetailRaw, Raw: s}, true
	}
}

// ParseAck parses a full ACK (downlink) frame: `ACK|!seq|STATUS|DETAIL`.
func ParseAck(frame string) (AckFrame, *ParseError) {
	frame = trimTrailingNewline(frame)
	if frame == "" {
		return AckFrame{}, newParseError(ErrEmptyFrame, 0)
	}
	for i := 0; i < len(frame); i++ {
		if frame[i] == 0 {
			return AckFrame{}, newParseError(ErrNulByte, i)
		}
	}
	if len(frame) > MaxFrameSize {
		return AckFrame{}, newParseError(ErrFrameTooLarge, MaxFrameSize)
	}

	fields := SplitFields(frame, MaxAckFields)
	if len(fields) < 3 || fields[0] != "ACK" {
		return AckFrame{}, newParseError(ErrInvalidAck, 0)
	}

	var a AckFrame
	if seq, ok := ParseSeq(fields[1]); ok {
		a.Seq = seq
		a.SeqOK = true
	} else if fields[1] != "" {
		return AckFrame{}, newParseError(ErrInvalidSeq, len(fields[0])+1)
	}

	status, ok := ParseAckStatus(fields[2])
	if !ok {
		return AckFrame{}, newParseError(ErrInvalidAck, 0)
	}
	a.Status = status

	if len(fields) > 3 {
		detail, ok := ParseAckDetail(status, fields[3])
		if !ok {
			return AckFrame{}, newParseError(ErrInvalidAck, 0)
		}
		a.Detail = detail
	}

	return a, nil
}
