package codec

// ParseUplink parses a full uplink frame: `METHOD|!seq|AUTH|SERIAL|BODY`,
// where BODY is omitted for PING and required for PUSH/PULL.
func ParseUplink(frame string) (UplinkFrame, *ParseError) {
	frame = trimTrailingNewline(frame)
	if frame == "" {
		return UplinkFrame{}, newParseError(ErrEmptyFrame, 0)
	}
	for i := 0; i < len(frame); i++ {
		if frame[i] == 0 {
			return UplinkFrame{}, newParseError(ErrNulByte, i)
		}
	}
	if len(frame) > MaxFrameSize {
		return UplinkFrame{}, newParseError(ErrFrameTooLarge, MaxFrameSize)
	}

	fields := SplitFields(frame, MaxUplinkFields)
	if len(fields) < 4 {
		return UplinkFrame{}, newParseError(ErrInvalidMethod, 0)
	}

	method, ok := ParseMethod(fields[0])
	if !ok {
		return UplinkFrame{}, newParseError(ErrInvalidMethod, 0)
	}

	pos := len(fields[0]) + 1
	var f UplinkFrame
	f.Method = method

	if seq, ok := ParseSeq(fields[1]); ok {
		f.Seq = seq
		f.SeqOK = true
	} else if fields[1] != "" {
		return UplinkFrame{}, newParseError(ErrInvalidSeq, pos)
	}
	pos += len(fields[1]) + 1

	if !ValidateAuth(fields[2]) {
		return UplinkFrame{}, newParseError(ErrInvalidAuth, pos)
	}
	f.Auth = fields[2]
	pos += len(fields[2]) + 1

	serial, ok := ExtractSerial(fields[3])
	if !ok {
		return UplinkFrame{}, newParseError(ErrInvalidSerial, pos)
	}
	f.Serial = serial
	pos += len(fields[3]) + 1

	switch method {
	case Ping:
		return f, nil
	case Push:
		if len(fields) < 5 || fields[4] == "" {
			return UplinkFrame{}, newParseError(ErrMissingBody, pos)
		}
		body, ok := ParsePushBody(fields[4])
		if !ok {
			return UplinkFrame{}, newParseError(ErrInvalidVariableBlock, pos)
		}
		f.PushBody = &body
		return f, nil
	case Pull:
		if len(fields) < 5 || fields[4] == "" {
			return UplinkFrame{}, newParseError(ErrMissingBody, pos)
		}
		body, ok := ParsePullBody(fields[4])
		if !ok {
			return UplinkFrame{}, newParseError(ErrInvalidVariableBlock, pos)
		}
		f.PullBody = &body
		return f, nil
	default:
		return UplinkFrame{}, newParseError(ErrInvalidMethod, 0)
	}
}

// ParseHeadless parses an inner frame used inside a TagoTiP/S envelope:
// `SERIAL|BODY` or `SERIAL` alone for a bodiless PING-equivalent, with no
// method or auth field since both are carried by the envelope itself.
// isPull selects whether BODY is parsed as a PUSH or PULL body.
func ParseHeadless(frame string, isPull bool) (HeadlessFrame, *ParseError) {
	frame = trimTrailingNewline(frame)
	if frame == "" {
		return HeadlessFrame{}, newParseError(ErrEmptyFrame, 0)
	}
	for i := 0; i < len(frame); i++ {
		if frame[i] == 0 {
			return HeadlessFrame{}, newParseError(ErrNulByte, i)
		}
	}
	if len(frame) > MaxFrameSize {
		return HeadlessFrame{}, newParseError(ErrFrameTooLarge, MaxFrameSize)
	}

	idx := findTopLevelPipe(frame, 0)
	var serialField, bodyField string
	hasBody := idx >= 0
	if hasBody {
		serialField = frame[:idx]
		bodyField = frame[idx+1:]
	} else {
		serialField = frame
	}

	serial, ok := ExtractSerial(serialField)
	if !ok {
		return HeadlessFrame{}, newParseError(ErrInvalidSerial, 0)
	}
	f := HeadlessFrame{Serial: serial}

	if !hasBody {
		return f, nil
	}
	if bodyField == "" {
		return HeadlessFrame{}, newParseError(ErrMissingBody, idx+1)
	}

	if isPull {
		body, ok := ParsePullBody(bodyField)
		if !ok {
			return HeadlessFrame{}, newParseError(ErrInvalidVariableBlock, idx+1)
		}
		f.PullBody = &body
	} else {
		body, ok := ParsePushBody(bodyField)
		if !ok {
			return HeadlessFrame{}, newParseError(ErrInvalidVariableBlock, idx+1)
		}
		f.PushBody = &body
	}
	return f, nil
}

// SplitFirstPipe splits s at the first top-level unescaped `|`, returning
// ok=false if none exists.
func SplitFirstPipe(s string) (before, after string, ok bool) {
	idx := findTopLevelPipe(s, 0)
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}
