// Package mccipher implements the AES-128 CFB8 stream cipher the
// Minecraft Java Edition protocol uses once a connection calls
// set_encryption (spec.md §4.G): 1-byte feedback granularity, register
// seeded with the shared secret used as both key and IV.
//
// Go's standard library only exposes CFB128 (cipher.NewCFBEncrypter
// operates on whole 16-byte blocks of feedback); the protocol's 1-byte
// feedback variant has to be hand-rolled on top of the raw block cipher,
// matching the cfb8 crate's behavior in original_source's connection.rs.
package mccipher

import (
	"crypto/aes"
	"crypto/cipher"
	"io"

	"github.com/go-mcproto/mcproto/mcerr"
)

// KeySize is the fixed AES-128 key/IV length the protocol uses.
const KeySize = 16

// cfb8 holds the running shift register shared by encrypt and decrypt,
// since both directions feed the cipher's own ciphertext output back in
// identically.
type cfb8 struct {
	block    cipher.Block
	register [aes.BlockSize]byte
}

func newCFB8(key []byte) (*cfb8, error) {
	if len(key) != KeySize {
		return nil, mcerr.Programming("mccipher: key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, mcerr.Programming("mccipher: invalid AES key: %v", err)
	}

	c := &cfb8{block: block}
	copy(c.register[:], key)

	return c, nil
}

// encryptByte encrypts a single plaintext byte and advances the register.
func (c *cfb8) encryptByte(p byte) byte {
	var ks [aes.BlockSize]byte
	c.block.Encrypt(ks[:], c.register[:])

	out := p ^ ks[0]
	c.shift(out)

	return out
}

// decryptByte decrypts a single ciphertext byte and advances the register.
func (c *cfb8) decryptByte(ct byte) byte {
	var ks [aes.BlockSize]byte
	c.block.Encrypt(ks[:], c.register[:])

	out := ct ^ ks[0]
	c.shift(ct)

	return out
}

// shift feeds the ciphertext byte into the register, matching CFB8's
// left-shift-and-append-the-output-byte feedback rule.
func (c *cfb8) shift(ciphertextByte byte) {
	copy(c.register[:], c.register[1:])
	c.register[aes.BlockSize-1] = ciphertextByte
}

// StreamEncryptor wraps a Writer, encrypting every byte written to it
// before forwarding to the underlying stream.
type StreamEncryptor struct {
	cipher *cfb8
	w      io.Writer
}

// NewStreamEncryptor constructs a StreamEncryptor keyed by the 16-byte
// shared secret.
func NewStreamEncryptor(w io.Writer, key []byte) (*StreamEncryptor, error) {
	c, err := newCFB8(key)
	if err != nil {
		return nil, err
	}

	return &StreamEncryptor{cipher: c, w: w}, nil
}

// Write encrypts buf byte-by-byte and writes the ciphertext through.
func (e *StreamEncryptor) Write(buf []byte) (int, error) {
	out := make([]byte, len(buf))
	for i, p := range buf {
		out[i] = e.cipher.encryptByte(p)
	}

	n, err := e.w.Write(out)
	if err != nil {
		return n, mcerr.Transport(err, "mccipher: encrypted write failed")
	}

	return n, nil
}

// StreamDecryptor wraps a Reader, decrypting every byte read from it.
type StreamDecryptor struct {
	cipher *cfb8
	r      io.Reader
}

// NewStreamDecryptor constructs a StreamDecryptor keyed by the 16-byte
// shared secret.
func NewStreamDecryptor(r io.Reader, key []byte) (*StreamDecryptor, error) {
	c, err := newCFB8(key)
	if err != nil {
		return nil, err
	}

	return &StreamDecryptor{cipher: c, r: r}, nil
}

// Read fills buf from the underlying stream and decrypts it in place.
func (d *StreamDecryptor) Read(buf []byte) (int, error) {
	n, err := d.r.Read(buf)
	if n > 0 {
		for i := 0; i < n; i++ {
			buf[i] = d.cipher.decryptByte(buf[i])
		}
	}

	if err != nil && err != io.EOF {
		return n, mcerr.Transport(err, "mccipher: encrypted read failed")
	}

	return n, err
}
