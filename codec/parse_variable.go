package codec

// FindOperator scans s for the first occurrence of one of the four operator
// tokens (`:=`, `?=`, `@=`, `=`) outside of any escape sequence, returning
// its byte offset, the operator it denotes, and the offset just past the
// token. The longer two-byte tokens are checked before the bare `=` so that
// e.g. `:=` is not mistaken for `=` preceded by a stray `:`.
func FindOperator(s string) (opStart int, op Operator, valStart int, ok bool) {
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		switch {
		case s[i] == ':' && i+1 < len(s) && s[i+1] == '=':
			return i, OpNumber, i + 2, true
		case s[i] == '?' && i+1 < len(s) && s[i+1] == '=':
			return i, OpBoolean, i + 2, true
		case s[i] == '@' && i+1 < len(s) && s[i+1] == '=':
			return i, OpLocation, i + 2, true
		case s[i] == '=':
			return i, OpString, i + 1, true
		}
		i++
	}
	return 0, 0, 0, false
}

// ScanValue scans forward from pos over a value and any subsequent
// `#unit`, `@timestamp`, `^group`, `{meta}` suffixes, stopping at the next
// unescaped `;` or the end of s. Returns the end offset of the value
// portion alone (before any suffixes) and the end offset of the whole
// variable (including suffixes).
func ScanValue(s string, pos int) (valueEnd, fullEnd int) {
	i := pos
	valueEnd = -1
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		switch s[i] {
		case '^', '#', '@', '{':
			if valueEnd < 0 {
				valueEnd = i
			}
			switch s[i] {
			case '{':
				end := findClosingBrace(s, i+1)
				if end < 0 {
					return valueEnd, len(s)
				}
				i = end + 1
				continue
			default:
				i++
				continue
			}
		case ';':
			if valueEnd < 0 {
				valueEnd = i
			}
			return valueEnd, i
		}
		i++
	}
	if valueEnd < 0 {
		valueEnd = i
	}
	return valueEnd, i
}

// ParseValue parses the raw value substring according to op.
func ParseValue(op Operator, raw string) (Value, bool) {
	switch op {
	case OpNumber:
		if !ValidateNumber(raw) {
			return Value{}, false
		}
		return Value{Operator: OpNumber, Number: raw}, true
	case OpString:
		return Value{Operator: OpString, String: raw}, true
	case OpBoolean:
		switch raw {
		case "true":
			return Value{Operator: OpBoolean, Boolean: true}, true
		case "false":
			return Value{Operator: OpBoolean, Boolean: false}, true
		default:
			return Value{}, false
		}
	case OpLocation:
		return ParseLocation(raw)
	default:
		return Value{}, false
	}
}

// ParseLocation parses a `lat,lng` or `lat,lng,alt` location value.
func ParseLocation(raw string) (Value, bool) {
	parts := splitUnescaped(raw, ',')
	if len(parts) != 2 && len(parts) != 3 {
		return Value{}, false
	}
	if !ValidateNumber(parts[0]) || !ValidateNumber(parts[1]) {
		return Value{}, false
	}
	v := Value{Operator: OpLocation, Lat: parts[0], Lng: parts[1]}
	if len(parts) == 3 {
		if !ValidateNumber(parts[2]) {
			return Value{}, false
		}
		v.Alt = parts[2]
		v.AltOK = true
	}
	return v, true
}

func splitUnescaped(s string, sep byte) []string {
	var out []string
	start := 0
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if s[i] == sep {
			out = append(out, s[start:i])
			i++
			start = i
			continue
		}
		i++
	}
	out = append(out, s[start:])
	return out
}

// ParseMetaPair parses a single `key=value` metadata entry.
func ParseMetaPair(s string) (MetaPair, bool) {
	eq := findUnescapedByte(s, 0, '=')
	if eq < 0 {
		return MetaPair{}, false
	}
	key := s[:eq]
	if !ValidateMetaKey(key) {
		return MetaPair{}, false
	}
	return MetaPair{Key: key, Value: s[eq+1:]}, true
}

// ParseMetadata parses a `{key=value,key=value}` block body (without the
// enclosing braces), appending each pair to pool and returning the range
// it occupies. Fails if there are too many pairs or any pair is malformed.
func ParseMetadata(body string, pool *[]MetaPair) (MetaRange, bool) {
	if body == "" {
		return MetaRange{}, false
	}
	parts := splitUnescaped(body, ',')
	if len(parts) == 0 || len(parts) > MaxMetaPairs {
		return MetaRange{}, false
	}
	if len(*pool)+len(parts) > MaxTotalMeta {
		return MetaRange{}, false
	}
	start := len(*pool)
	for _, part := range parts {
		p, ok := ParseMetaPair(part)
		if !ok {
			return MetaRange{}, false
		}
		*pool = append(*pool, p)
	}
	return MetaRange{Start: uint16(start), Len: uint16(len(parts))}, true
}

// ParseVariable parses a single variable entry (name, operator, value, and
// optional suffixes), appending any metadata to pool.
func ParseVariable(s string, pool *[]MetaPair) (Variable, bool) {
	opOff, op, valStart, ok := FindOperator(s)
	if !ok {
		return Variable{}, false
	}
	name := s[:opOff]
	if !ValidateVarName(name) {
		return Variable{}, false
	}

	valueEnd, _ := ScanValue(s, valStart)
	raw := s[valStart:valueEnd]
	val, ok := ParseValue(op, raw)
	if !ok {
		return Variable{}, false
	}

	v := Variable{Name: name, Operator: op, Value: val}

	i := valueEnd
	for i < len(s) {
		switch s[i] {
		case '#':
			if op == OpLocation {
				return Variable{}, false
			}
			end := scanUntilAny(s, i+1, "@^{;")
			v.Unit = s[i+1 : end]
			if !ValidateUnit(v.Unit) {
				return Variable{}, false
			}
			v.UnitOK = true
			i = end
		case '@':
			end := scanUntilAny(s, i+1, "#^{;")
			v.Timestamp = s[i+1 : end]
			if !validateIdent(v.Timestamp, 20) {
				return Variable{}, false
			}
			v.TimestampOK = true
			i = end
		case '^':
			end := scanUntilAny(s, i+1, "#@{;")
			v.Group = s[i+1 : end]
			if !ValidateGroup(v.Group) {
				return Variable{}, false
			}
			v.GroupOK = true
			i = end
		case '{':
			end := findClosingBrace(s, i+1)
			if end < 0 {
				return Variable{}, false
			}
			r, ok := ParseMetadata(s[i+1:end], pool)
			if !ok {
				return Variable{}, false
			}
			v.Meta = r
			v.MetaOK = true
			i = end + 1
		default:
			return Variable{}, false
		}
	}

	return v, true
}
