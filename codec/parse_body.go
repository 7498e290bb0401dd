package codec

// AddToPool appends pairs to pool and returns the range they occupy.
func AddToPool(pool *[]MetaPair, pairs []MetaPair) MetaRange {
	start := len(*pool)
	*pool = append(*pool, pairs...)
	return MetaRange{Start: uint16(start), Len: uint16(len(pairs))}
}

// ParseBodyModifiers parses a structured body's optional `@timestamp`,
// `^group`, and `{meta}` prefix, stopping at the opening `[` of the
// variable block. Returns the partially filled StructuredBody and the
// offset of the `[` that begins the variable block, or ok=false if the
// prefix is malformed or the `[` is never found.
func ParseBodyModifiers(s string, pool *[]MetaPair) (StructuredBody, int, bool) {
	var b StructuredBody
	i := 0
	for i < len(s) {
		switch s[i] {
		case '@':
			end := scanUntilAny(s, i+1, "^{[")
			b.Timestamp = s[i+1 : end]
			if !validateIdent(b.Timestamp, 20) {
				return StructuredBody{}, 0, false
			}
			b.TimestampOK = true
			i = end
		case '^':
			end := scanUntilAny(s, i+1, "@{[")
			b.Group = s[i+1 : end]
			if !ValidateGroup(b.Group) {
				return StructuredBody{}, 0, false
			}
			b.GroupOK = true
			i = end
		case '{':
			end := findClosingBrace(s, i+1)
			if end < 0 {
				return StructuredBody{}, 0, false
			}
			r, ok := ParseMetadata(s[i+1:end], pool)
			if !ok {
				return StructuredBody{}, 0, false
			}
			b.BodyMeta = r
			b.BodyMetaOK = true
			i = end + 1
		case '[':
			return b, i, true
		default:
			return StructuredBody{}, 0, false
		}
	}
	return StructuredBody{}, 0, false
}

// ParseVariableList parses the contents of a `[var;var;...]` block (without
// the enclosing brackets), appending each variable's metadata to pool.
func ParseVariableList(body string, pool *[]MetaPair) ([]Variable, bool) {
	if body == "" {
		return nil, false
	}
	parts := splitUnescaped(body, ';')
	if len(parts) == 0 || len(parts) > MaxVariables {
		return nil, false
	}
	vars := make([]Variable, 0, len(parts))
	for _, part := range parts {
		v, ok := ParseVariable(part, pool)
		if !ok {
			return nil, false
		}
		vars = append(vars, v)
	}
	return vars, true
}

// ParseHexPassthrough validates a passthrough payload given as hex digits,
// validating that the length is even and every character is a hex digit.
// The raw hex string is retained verbatim rather than decoded to bytes,
// matching the structured-body convention of keeping wire substrings.
func ParseHexPassthrough(s string) (PassthroughBody, bool) {
	if s == "" || len(s)%2 != 0 {
		return PassthroughBody{}, false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return PassthroughBody{}, false
		}
	}
	return PassthroughBody{Encoding: PassthroughHex, Data: s}, true
}

// ParseBase64Passthrough validates a passthrough payload given as base64
// text (standard alphabet, optional `=` padding). The raw text is retained
// verbatim.
func ParseBase64Passthrough(s string) (PassthroughBody, bool) {
	if s == "" {
		return PassthroughBody{}, false
	}
	padding := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9', b == '+', b == '/':
			if padding > 0 {
				return PassthroughBody{}, false
			}
		case b == '=':
			padding++
			if padding > 2 {
				return PassthroughBody{}, false
			}
		default:
			return PassthroughBody{}, false
		}
	}
	return PassthroughBody{Encoding: PassthroughBase64, Data: s}, true
}

// ParsePushBody parses a PUSH body: either a structured `[vars]` block
// (with optional `@ts^group{meta}` prefix) or a bare passthrough payload
// introduced by `>x` (hex) or `>b` (base64).
func ParsePushBody(s string) (PushBody, bool) {
	if s == "" {
		return PushBody{}, false
	}
	if len(s) >= 2 && s[0] == '>' {
		switch s[1] {
		case 'x':
			pt, ok := ParseHexPassthrough(s[2:])
			if !ok {
				return PushBody{}, false
			}
			return PushBody{Kind: PushPassthrough, Passthrough: pt}, true
		case 'b':
			pt, ok := ParseBase64Passthrough(s[2:])
			if !ok {
				return PushBody{}, false
			}
			return PushBody{Kind: PushPassthrough, Passthrough: pt}, true
		default:
			return PushBody{}, false
		}
	}
	var pool []MetaPair
	b, bracketPos, ok := ParseBodyModifiers(s, &pool)
	if !ok {
		return PushBody{}, false
	}
	end := findClosingBracket(s, bracketPos+1)
	if end < 0 {
		return PushBody{}, false
	}
	vars, ok := ParseVariableList(s[bracketPos+1:end], &pool)
	if !ok {
		return PushBody{}, false
	}
	b.Variables = vars
	b.MetaPool = pool
	return PushBody{Kind: PushStructured, Structured: b}, true
}

// ParsePullBody parses a PULL body: a `[name;name;...]` list of requested
// variable names.
func ParsePullBody(s string) (PullBody, bool) {
	if len(s) < 2 || s[0] != '[' {
		return PullBody{}, false
	}
	end := findClosingBracket(s, 1)
	if end < 0 || end != len(s)-1 {
		return PullBody{}, false
	}
	inner := s[1:end]
	if inner == "" {
		return PullBody{}, false
	}
	parts := splitUnescaped(inner, ';')
	if len(parts) > MaxVariables {
		return PullBody{}, false
	}
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if !ValidateVarName(p) {
			return PullBody{}, false
		}
		names = append(names, p)
	}
	return PullBody{Variables: names}, true
}
