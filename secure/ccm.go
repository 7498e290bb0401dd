package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"errors"
)

// ccmL is the RFC 3610 length-field size in bytes. A 13-byte nonce
// (15-L) leaves L=2, capping a single message at 65535 bytes, ample for
// a telemetry frame and small enough to keep nonce construction aligned
// with the GCM/ChaCha suites' 12-byte nonces plus one byte of headroom.
const ccmL = 2

// ccmM is the RFC 3610 tag length in bytes. This is a non-standard,
// shorter-than-usual CCM parameterization (the common choice is 16); it
// halves tag overhead on the wire at the cost of a smaller forgery-
// resistance margin, a tradeoff made once for the whole protocol rather
// than left configurable.
const ccmM = CCMTagSize

var errCCMSealInput = errors.New("ccm: invalid input length")

// ccmAEAD implements crypto/cipher.AEAD for AES-CCM with M=8, L=2, since
// the standard library and the vetted third-party AEAD packages available
// only offer GCM and ChaCha20-Poly1305, not CCM.
type ccmAEAD struct {
	block cipher.Block
}

func newCCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &ccmAEAD{block: block}, nil
}

func (c *ccmAEAD) NonceSize() int { return CCMNonceSize }
func (c *ccmAEAD) Overhead() int  { return ccmM }

func (c *ccmAEAD) Seal(dst, nonce, plaintext, aad []byte) []byte {
	if len(nonce) != CCMNonceSize {
		panic("ccm: invalid nonce size")
	}
	mac := c.cbcMAC(nonce, plaintext, aad)

	ciphertext := make([]byte, len(plaintext))
	s0 := c.counterBlock(nonce, 0)
	c.ctrXOR(nonce, 1, plaintext, ciphertext)

	tag := make([]byte, ccmM)
	for i := 0; i < ccmM; i++ {
		tag[i] = mac[i] ^ s0[i]
	}

	ret, out := sliceForAppend(dst, len(ciphertext)+ccmM)
	copy(out, ciphertext)
	copy(out[len(ciphertext):], tag)
	return ret
}

func (c *ccmAEAD) Open(dst, nonce, in, aad []byte) ([]byte, error) {
	if len(nonce) != CCMNonceSize {
		panic("ccm: invalid nonce size")
	}
	if len(in) < ccmM {
		return nil, errCCMSealInput
	}
	ciphertext := in[:len(in)-ccmM]
	gotTag := in[len(in)-ccmM:]

	plaintext := make([]byte, len(ciphertext))
	c.ctrXOR(nonce, 1, ciphertext, plaintext)

	mac := c.cbcMAC(nonce, plaintext, aad)
	s0 := c.counterBlock(nonce, 0)
	wantTag := make([]byte, ccmM)
	for i := 0; i < ccmM; i++ {
		wantTag[i] = mac[i] ^ s0[i]
	}

	if subtle.ConstantTimeCompare(gotTag, wantTag) != 1 {
		return nil, errCCMSealInput
	}

	ret, out := sliceForAppend(dst, len(plaintext))
	copy(out, plaintext)
	return ret, nil
}

// counterBlock computes S_i = E(K, A_i), the keystream block for counter
// value i (A_0 for the MAC-tag mask, A_1.. for message keystream).
func (c *ccmAEAD) counterBlock(nonce []byte, i uint16) []byte {
	a := make([]byte, 16)
	a[0] = byte(ccmL - 1)
	copy(a[1:1+CCMNonceSize], nonce)
	a[14] = byte(i >> 8)
	a[15] = byte(i)
	out := make([]byte, 16)
	c.block.Encrypt(out, a)
	return out
}

// ctrXOR XORs src against the CCM counter keystream starting at counter
// value startCtr, writing to dst.
func (c *ccmAEAD) ctrXOR(nonce []byte, startCtr uint16, src, dst []byte) {
	ctr := startCtr
	for off := 0; off < len(src); off += 16 {
		ks := c.counterBlock(nonce, ctr)
		end := off + 16
		if end > len(src) {
			end = len(src)
		}
		for i := off; i < end; i++ {
			dst[i] = src[i] ^ ks[i-off]
		}
		ctr++
	}
}

// cbcMAC computes the RFC 3610 CBC-MAC over the associated data and
// plaintext, returning the final 16-byte MAC block (the caller truncates
// and masks it to produce the wire tag).
func (c *ccmAEAD) cbcMAC(nonce, plaintext, aad []byte) []byte {
	b0 := make([]byte, 16)
	var flags byte
	if len(aad) > 0 {
		flags |= 0x40
	}
	flags |= byte((ccmM-2)/2) << 3
	flags |= byte(ccmL - 1)
	b0[0] = flags
	copy(b0[1:1+CCMNonceSize], nonce)
	msgLen := len(plaintext)
	b0[14] = byte(msgLen >> 8)
	b0[15] = byte(msgLen)

	mac := make([]byte, 16)
	c.block.Encrypt(mac, b0)

	if len(aad) > 0 {
		aLenField := make([]byte, 2)
		aLenField[0] = byte(len(aad) >> 8)
		aLenField[1] = byte(len(aad))
		combined := append(aLenField, aad...)
		mac = c.cbcChain(mac, combined)
	}

	mac = c.cbcChain(mac, plaintext)
	return mac
}

// cbcChain XORs data (zero-padded to a 16-byte boundary) block by block
// into the running CBC-MAC state, encrypting after each block.
func (c *ccmAEAD) cbcChain(mac []byte, data []byte) []byte {
	block := make([]byte, 16)
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		n := copy(block, data[off:end])
		for i := n; i < 16; i++ {
			block[i] = 0
		}
		for i := 0; i < 16; i++ {
			mac[i] ^= block[i]
		}
		next := make([]byte, 16)
		c.block.Encrypt(next, mac)
		mac = next
	}
	return mac
}

func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
