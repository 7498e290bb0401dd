package secure

// IsEnvelope reports whether data looks like a TagoTiP/S envelope rather
// than a plaintext ACK frame sharing the same transport. It returns false
// for empty data and for data whose first byte is the reserved ACK flags
// value (0x41, ASCII 'A'), and true otherwise. Callers still need
// ParseEnvelopeHeader/OpenEnvelope to confirm the header is well-formed.
func IsEnvelope(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return data[0] != ReservedFlagsACK
}

// ParseEnvelopeHeader parses the fixed header and returns it along with
// the remaining ciphertext-plus-tag payload.
func ParseEnvelopeHeader(data []byte) (EnvelopeHeader, []byte, *CryptoError) {
	if !IsEnvelope(data) {
		return EnvelopeHeader{}, nil, newCryptoError(ErrPlaintextACK)
	}
	header, ok := HeaderFromBytes(data)
	if !ok {
		return EnvelopeHeader{}, nil, newCryptoError(ErrInvalidHeader)
	}
	return header, data[HeaderSize:], nil
}

// sealRaw builds and seals an envelope for an inner payload of method m,
// given the caller's suite, key, auth token, device serial, and monotonic
// counter. The header is serialized first and fed to the AEAD as
// associated data, then the ciphertext is appended after it.
func sealRaw(suite CipherSuite, method EnvelopeMethod, key []byte, authToken, serial string, counter uint32, inner []byte) ([]byte, *CryptoError) {
	authHash, ok := DeriveAuthHash(authToken)
	if !ok {
		return nil, newCryptoError(ErrInvalidAuthToken)
	}
	deviceHash, ok := DeriveDeviceHash(serial)
	if !ok {
		return nil, newCryptoError(ErrInvalidSerial)
	}

	flags := Flags{Cipher: suite, Version: Version1, Method: method}
	flagByte, ok := flags.Encode()
	if !ok {
		return nil, newCryptoError(ErrUnsupportedCipher)
	}

	header := EnvelopeHeader{
		Flags:      flags,
		Counter:    counter,
		AuthHash:   authHash,
		DeviceHash: deviceHash,
	}
	headerBytes, ok := header.ToBytes()
	if !ok {
		return nil, newCryptoError(ErrInvalidHeader)
	}

	nonce := ConstructNonce(suite, flagByte, deviceHash, counter)
	ciphertext, cerr := AEADEncrypt(suite, key, nonce, headerBytes[:], inner)
	if cerr != nil {
		return nil, cerr
	}

	out := make([]byte, 0, HeaderSize+len(ciphertext))
	out = append(out, headerBytes[:]...)
	out = append(out, ciphertext...)
	return out, nil
}

// SealUplink seals a PUSH, PULL or PING inner frame into a TagoTiP/S
// envelope.
func SealUplink(suite CipherSuite, method EnvelopeMethod, key []byte, authToken, serial string, counter uint32, inner []byte) ([]byte, *CryptoError) {
	if method != MethodPush && method != MethodPull && method != MethodPing {
		return nil, newCryptoError(ErrUnsupportedMethod)
	}
	return sealRaw(suite, method, key, authToken, serial, counter, inner)
}

// SealDownlink seals an ACK inner frame into a TagoTiP/S envelope. The
// method field of the flags byte still reflects the uplink method the ACK
// responds to, since the envelope format carries no separate downlink
// method space.
func SealDownlink(suite CipherSuite, respondingTo EnvelopeMethod, key []byte, authToken, serial string, counter uint32, inner []byte) ([]byte, *CryptoError) {
	return sealRaw(suite, respondingTo, key, authToken, serial, counter, inner)
}

// SealRaw is the general entry point for sealing an arbitrary inner
// payload, exposed for callers (such as the roundtrip CLI command) that
// already have method/suite/key material in hand and do not fit the
// uplink/downlink split.
func SealRaw(suite CipherSuite, method EnvelopeMethod, key []byte, authToken, serial string, counter uint32, inner []byte) ([]byte, *CryptoError) {
	return sealRaw(suite, method, key, authToken, serial, counter, inner)
}

// OpenEnvelope authenticates and decrypts data, which must be a full
// envelope (header plus ciphertext-and-tag) as produced by one of the
// Seal* functions. It returns the header and the recovered inner
// plaintext.
func OpenEnvelope(key []byte, data []byte) (EnvelopeHeader, []byte, *CryptoError) {
	header, ciphertext, cerr := ParseEnvelopeHeader(data)
	if cerr != nil {
		return EnvelopeHeader{}, nil, cerr
	}

	headerBytes, ok := header.ToBytes()
	if !ok {
		return EnvelopeHeader{}, nil, newCryptoError(ErrInvalidHeader)
	}
	flagByte, ok := header.Flags.Encode()
	if !ok {
		return EnvelopeHeader{}, nil, newCryptoError(ErrInvalidHeader)
	}

	nonce := ConstructNonce(header.Flags.Cipher, flagByte, header.DeviceHash, header.Counter)
	plaintext, cerr := AEADDecrypt(header.Flags.Cipher, key, nonce, headerBytes[:], ciphertext)
	if cerr != nil {
		return EnvelopeHeader{}, nil, cerr
	}
	return header, plaintext, nil
}
