package codec

// FrameWriter is a cursor-based, single-pass writer over a caller-supplied
// buffer. It never allocates: every Write* method advances an internal
// cursor and reports BufferTooSmall rather than growing the buffer.
type FrameWriter struct {
	buf []byte
	pos int
}

// NewFrameWriter wraps buf for writing from the start.
func NewFrameWriter(buf []byte) FrameWriter {
	return FrameWriter{buf: buf}
}

// Len returns the number of bytes written so far.
func (w *FrameWriter) Len() int {
	return w.pos
}

// Bytes returns the portion of the buffer written so far.
func (w *FrameWriter) Bytes() []byte {
	return w.buf[:w.pos]
}

// WriteByte appends a single byte.
func (w *FrameWriter) WriteByte(b byte) error {
	if w.pos >= len(w.buf) {
		return newBuildError(ErrBufferTooSmall)
	}
	w.buf[w.pos] = b
	w.pos++
	return nil
}

// WriteBytes appends raw bytes verbatim.
func (w *FrameWriter) WriteBytes(b []byte) error {
	if w.pos+len(b) > len(w.buf) {
		return newBuildError(ErrBufferTooSmall)
	}
	copy(w.buf[w.pos:], b)
	w.pos += len(b)
	return nil
}

// WriteStr appends a string verbatim (no escaping).
func (w *FrameWriter) WriteStr(s string) error {
	if w.pos+len(s) > len(w.buf) {
		return newBuildError(ErrBufferTooSmall)
	}
	copy(w.buf[w.pos:], s)
	w.pos += len(s)
	return nil
}

// WriteEscaped escapes s and appends the result.
func (w *FrameWriter) WriteEscaped(s string) error {
	n, ok := EscapeInto(s, w.buf[w.pos:])
	if !ok {
		return newBuildError(ErrBufferTooSmall)
	}
	w.pos += n
	return nil
}

// WritePipe appends the field separator `|`.
func (w *FrameWriter) WritePipe() error {
	return w.WriteByte('|')
}

// WriteU32 appends the decimal representation of v.
func (w *FrameWriter) WriteU32(v uint32) error {
	n, ok := FormatU32(v, w.buf[w.pos:])
	if !ok {
		return newBuildError(ErrBufferTooSmall)
	}
	w.pos += n
	return nil
}

// WriteValue appends a variable's typed value in its wire representation
// (without the leading operator, which the caller writes separately).
func (w *FrameWriter) WriteValue(v Value) error {
	switch v.Operator {
	case OpNumber:
		return w.WriteStr(v.Number)
	case OpString:
		return w.WriteStr(v.String)
	case OpBoolean:
		if v.Boolean {
			return w.WriteStr("true")
		}
		return w.WriteStr("false")
	case OpLocation:
		if err := w.WriteStr(v.Lat); err != nil {
			return err
		}
		if err := w.WriteByte(','); err != nil {
			return err
		}
		if err := w.WriteStr(v.Lng); err != nil {
			return err
		}
		if v.AltOK {
			if err := w.WriteByte(','); err != nil {
				return err
			}
			if err := w.WriteStr(v.Alt); err != nil {
				return err
			}
		}
		return nil
	default:
		return newBuildError(ErrInvalidInput)
	}
}

// WriteMetadataPairs writes a `{key=value,key=value}` block.
func (w *FrameWriter) WriteMetadataPairs(pairs []MetaPair) error {
	if len(pairs) == 0 {
		return newBuildError(ErrInvalidInput)
	}
	if err := w.WriteByte('{'); err != nil {
		return err
	}
	for i, p := range pairs {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := w.WriteEscaped(p.Key); err != nil {
			return err
		}
		if err := w.WriteByte('='); err != nil {
			return err
		}
		if err := w.WriteStr(p.Value); err != nil {
			return err
		}
	}
	return w.WriteByte('}')
}

// operatorToken returns the wire token for an operator.
func operatorToken(op Operator) string {
	switch op {
	case OpNumber:
		return ":="
	case OpString:
		return "="
	case OpBoolean:
		return "?="
	case OpLocation:
		return "@="
	default:
		return "="
	}
}

// WriteVariable writes a single variable with all of its optional suffixes,
// given the shared metadata pool it indexes into.
func (w *FrameWriter) WriteVariable(v Variable, pool []MetaPair) error {
	if err := w.WriteEscaped(v.Name); err != nil {
		return err
	}
	if err := w.WriteStr(operatorToken(v.Operator)); err != nil {
		return err
	}
	if err := w.WriteValue(v.Value); err != nil {
		return err
	}
	if v.UnitOK {
		if err := w.WriteByte('#'); err != nil {
			return err
		}
		if err := w.WriteEscaped(v.Unit); err != nil {
			return err
		}
	}
	if v.TimestampOK {
		if err := w.WriteByte('@'); err != nil {
			return err
		}
		if err := w.WriteStr(v.Timestamp); err != nil {
			return err
		}
	}
	if v.GroupOK {
		if err := w.WriteByte('^'); err != nil {
			return err
		}
		if err := w.WriteEscaped(v.Group); err != nil {
			return err
		}
	}
	if v.MetaOK {
		pairs := pool[v.Meta.Start : int(v.Meta.Start)+int(v.Meta.Len)]
		if err := w.WriteMetadataPairs(pairs); err != nil {
			return err
		}
	}
	return nil
}

// WriteBodyModifiers writes a structured body's optional timestamp, group,
// and metadata modifiers (the portion preceding the `[` variable block).
func (w *FrameWriter) WriteBodyModifiers(b StructuredBody) error {
	if b.TimestampOK {
		if err := w.WriteByte('@'); err != nil {
			return err
		}
		if err := w.WriteStr(b.Timestamp); err != nil {
			return err
		}
	}
	if b.GroupOK {
		if err := w.WriteByte('^'); err != nil {
			return err
		}
		if err := w.WriteEscaped(b.Group); err != nil {
			return err
		}
	}
	if b.BodyMetaOK {
		pairs := b.MetaPool[b.BodyMeta.Start : int(b.BodyMeta.Start)+int(b.BodyMeta.Len)]
		if err := w.WriteMetadataPairs(pairs); err != nil {
			return err
		}
	}
	return nil
}
