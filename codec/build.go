package codec

// methodToken returns the wire token for a method.
func methodToken(m Method) (string, bool) {
	switch m {
	case Push:
		return "PUSH", true
	case Pull:
		return "PULL", true
	case Ping:
		return "PING", true
	default:
		return "", false
	}
}

// BuildMetadata writes a `{...}` metadata block for the given pairs.
func BuildMetadata(w *FrameWriter, pairs []MetaPair) error {
	return w.WriteMetadataPairs(pairs)
}

// BuildVariable writes a single variable, given the pool its metadata (if
// any) indexes into.
func BuildVariable(w *FrameWriter, v Variable, pool []MetaPair) error {
	return w.WriteVariable(v, pool)
}

// BuildPushBody writes a PUSH body: either the structured `[vars]` form
// with its optional prefix modifiers, or a passthrough payload.
func BuildPushBody(w *FrameWriter, b PushBody) error {
	switch b.Kind {
	case PushPassthrough:
		switch b.Passthrough.Encoding {
		case PassthroughHex:
			if err := w.WriteStr(">x"); err != nil {
				return err
			}
		case PassthroughBase64:
			if err := w.WriteStr(">b"); err != nil {
				return err
			}
		default:
			return newBuildError(ErrInvalidInput)
		}
		return w.WriteStr(b.Passthrough.Data)
	case PushStructured:
		s := b.Structured
		if err := w.WriteBodyModifiers(s); err != nil {
			return err
		}
		if err := w.WriteByte('['); err != nil {
			return err
		}
		for i, v := range s.Variables {
			if i > 0 {
				if err := w.WriteByte(';'); err != nil {
					return err
				}
			}
			if err := BuildVariable(w, v, s.MetaPool); err != nil {
				return err
			}
		}
		return w.WriteByte(']')
	default:
		return newBuildError(ErrInvalidInput)
	}
}

// BuildPullBody writes a PULL body: `[name;name;...]`.
func BuildPullBody(w *FrameWriter, b PullBody) error {
	if len(b.Variables) == 0 {
		return newBuildError(ErrInvalidInput)
	}
	if err := w.WriteByte('['); err != nil {
		return err
	}
	for i, name := range b.Variables {
		if i > 0 {
			if err := w.WriteByte(';'); err != nil {
				return err
			}
		}
		if err := w.WriteStr(name); err != nil {
			return err
		}
	}
	return w.WriteByte(']')
}

// BuildUplink serializes a full uplink frame into buf, returning the bytes
// written or a BuildError if buf is too small or f is malformed.
func BuildUplink(f UplinkFrame, buf []byte) ([]byte, error) {
	token, ok := methodToken(f.Method)
	if !ok {
		return nil, newBuildError(ErrInvalidInput)
	}
	w := NewFrameWriter(buf)
	if err := w.WriteStr(token); err != nil {
		return nil, err
	}
	if err := w.WritePipe(); err != nil {
		return nil, err
	}
	if f.SeqOK {
		if err := w.WriteByte('!'); err != nil {
			return nil, err
		}
		if err := w.WriteU32(f.Seq); err != nil {
			return nil, err
		}
	}
	if err := w.WritePipe(); err != nil {
		return nil, err
	}
	if err := w.WriteStr(f.Auth); err != nil {
		return nil, err
	}
	if err := w.WritePipe(); err != nil {
		return nil, err
	}
	if err := w.WriteStr(f.Serial); err != nil {
		return nil, err
	}

	switch f.Method {
	case Ping:
	case Push:
		if f.PushBody == nil {
			return nil, newBuildError(ErrInvalidInput)
		}
		if err := w.WritePipe(); err != nil {
			return nil, err
		}
		if err := BuildPushBody(&w, *f.PushBody); err != nil {
			return nil, err
		}
	case Pull:
		if f.PullBody == nil {
			return nil, newBuildError(ErrInvalidInput)
		}
		if err := w.WritePipe(); err != nil {
			return nil, err
		}
		if err := BuildPullBody(&w, *f.PullBody); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}

// BuildHeadless serializes an inner envelope frame: `SERIAL` or
// `SERIAL|BODY`.
func BuildHeadless(f HeadlessFrame, isPull bool, buf []byte) ([]byte, error) {
	w := NewFrameWriter(buf)
	if err := w.WriteStr(f.Serial); err != nil {
		return nil, err
	}
	if isPull {
		if f.PullBody == nil {
			return w.Bytes(), nil
		}
		if err := w.WritePipe(); err != nil {
			return nil, err
		}
		if err := BuildPullBody(&w, *f.PullBody); err != nil {
			return nil, err
		}
	} else {
		if f.PushBody == nil {
			return w.Bytes(), nil
		}
		if err := w.WritePipe(); err != nil {
			return nil, err
		}
		if err := BuildPushBody(&w, *f.PushBody); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// ackStatusToken returns the wire token for an ACK status.
func ackStatusToken(s AckStatus) (string, bool) {
	switch s {
	case AckOK:
		return "OK", true
	case AckPong:
		return "PONG", true
	case AckCmd:
		return "CMD", true
	case AckErr:
		return "ERR", true
	default:
		return "", false
	}
}

var errorCodeTokens = map[ErrorCode]string{
	ErrInvalidToken:       "invalid_token",
	ErrInvalidMethodCode:  "invalid_method",
	ErrInvalidPayload:     "invalid_payload",
	ErrInvalidSeqCode:     "invalid_seq",
	ErrDeviceNotFound:     "device_not_found",
	ErrVariableNotFound:   "variable_not_found",
	ErrRateLimited:        "rate_limited",
	ErrAuthFailed:         "auth_failed",
	ErrUnsupportedVersion: "unsupported_version",
	ErrPayloadTooLarge:    "payload_too_large",
	ErrServerError:        "server_error",
}

// BuildAckInner writes an ACK frame's STATUS and DETAIL fields (without the
// leading `ACK|!seq|` prefix), used both by BuildAck and by callers that
// embed an ACK body inside another transport.
func BuildAckInner(w *FrameWriter, status AckStatus, detail *AckDetail) error {
	token, ok := ackStatusToken(status)
	if !ok {
		return newBuildError(ErrInvalidInput)
	}
	if err := w.WriteStr(token); err != nil {
		return err
	}
	if detail == nil {
		return nil
	}
	if err := w.WritePipe(); err != nil {
		return err
	}
	switch detail.Kind {
	case DetailCount:
		return w.WriteU32(detail.Count)
	case DetailVariables:
		return w.WriteStr(detail.Variables)
	case DetailCommand:
		return w.WriteStr(detail.Command)
	case DetailError:
		if detail.Text != "" {
			return w.WriteStr(detail.Text)
		}
		name, ok := errorCodeTokens[detail.ErrorCode]
		if !ok {
			name = "server_error"
		}
		return w.WriteStr(name)
	case DetailRaw:
		return w.WriteStr(detail.Raw)
	default:
		return newBuildError(ErrInvalidInput)
	}
}

// BuildAck serializes a full ACK (downlink) frame: `ACK|!seq|STATUS|DETAIL`.
func BuildAck(f AckFrame, buf []byte) ([]byte, error) {
	w := NewFrameWriter(buf)
	if err := w.WriteStr("ACK"); err != nil {
		return nil, err
	}
	if err := w.WritePipe(); err != nil {
		return nil, err
	}
	if f.SeqOK {
		if err := w.WriteByte('!'); err != nil {
			return nil, err
		}
		if err := w.WriteU32(f.Seq); err != nil {
			return nil, err
		}
	}
	if err := w.WritePipe(); err != nil {
		return nil, err
	}
	if err := BuildAckInner(&w, f.Status, f.Detail); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
