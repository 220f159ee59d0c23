// Command mcproto-replay decodes a captured client-to-server and
// server-to-client byte stream through the full Handshake→Login exchange,
// recovering the shared secret from the client's EncryptionResponse with a
// bundled RSA test key. It exists to demonstrate, end to end, that the
// framing/codec/dispatch pipeline in this module reproduces a real
// Minecraft Java Edition login handshake (spec.md §8).
package main

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-mcproto/mcproto/cmd/mcproto-replay/internal/testkey"
	"github.com/go-mcproto/mcproto/mcconn"
	"github.com/go-mcproto/mcproto/packets"
	"github.com/go-mcproto/mcproto/registry"
)

// wantSharedSecret is the shared secret this demo's bundled captures are
// built to recover, matching mccipher's own CFB8 test vector — a bundled
// EncryptionResponse that decrypted to anything else would mean the
// captures and the key no longer agree.
const wantSharedSecret = "7532710be168544415a69d2a122b4230"

func main() {
	c2sPath := flag.String("c2s", "testdata/C2S.bin", "path to the client-to-server capture")
	s2cPath := flag.String("s2c", "testdata/S2C.bin", "path to the server-to-client capture")
	keyPath := flag.String("key", "", "path to a DER-encoded PKCS#1 RSA private key (default: bundled test key)")
	flag.Parse()

	if err := run(*c2sPath, *s2cPath, *keyPath); err != nil {
		log.Fatalf("mcproto-replay: %v", err)
	}
}

func run(c2sPath, s2cPath, keyPath string) error {
	priv, err := loadPrivateKey(keyPath)
	if err != nil {
		return fmt.Errorf("loading rsa key: %w", err)
	}

	c2s, err := os.ReadFile(c2sPath)
	if err != nil {
		return fmt.Errorf("reading c2s capture: %w", err)
	}

	s2c, err := os.ReadFile(s2cPath)
	if err != nil {
		return fmt.Errorf("reading s2c capture: %w", err)
	}

	wantSecret, err := hex.DecodeString(wantSharedSecret)
	if err != nil {
		return fmt.Errorf("decoding want-secret vector: %w", err)
	}

	var sharedSecret []byte

	log.Printf("--- serverbound (%s) ---", c2sPath)

	if err := replay(c2s, registry.StateHandshake, registry.Serverbound, func(conn *mcconn.Connection, p packets.Packet) (registry.State, error) {
		switch pkt := p.(type) {
		case *packets.Handshake:
			log.Printf("%s: protocol=%d address=%s:%d intent=%s", p.PacketName(), pkt.ProtocolVersion, pkt.ServerAddress, pkt.ServerPort, pkt.Intent.NextState())

			return registry.State(pkt.Intent.NextState()), nil
		case *packets.LoginStart:
			log.Printf("%s: name=%s uuid=%s", p.PacketName(), pkt.Name, pkt.PlayerUUID)
		case *packets.EncryptionResponse:
			secret, err := rsa.DecryptPKCS1v15(rand.Reader, priv, pkt.SharedSecret)
			if err != nil {
				return "", fmt.Errorf("decrypting shared secret: %w", err)
			}

			token, err := rsa.DecryptPKCS1v15(rand.Reader, priv, pkt.VerifyToken)
			if err != nil {
				return "", fmt.Errorf("decrypting verify token: %w", err)
			}

			if !bytes.Equal(secret, wantSecret) {
				return "", fmt.Errorf("recovered shared secret %x does not match expected %x", secret, wantSecret)
			}

			sharedSecret = secret
			log.Printf("%s: recovered %d-byte shared secret, verify token %x", p.PacketName(), len(secret), token)

			if err := conn.SetEncryption(secret); err != nil {
				return "", fmt.Errorf("enabling encryption: %w", err)
			}

			log.Printf("encryption enabled on the serverbound stream")
		case *packets.LoginAcknowledged:
			log.Printf("%s", p.PacketName())
		}

		return "", nil
	}); err != nil {
		return fmt.Errorf("replaying serverbound stream: %w", err)
	}

	log.Printf("--- clientbound (%s) ---", s2cPath)

	var compressionThreshold int32 = -1

	if err := replay(s2c, registry.StateLogin, registry.Clientbound, func(conn *mcconn.Connection, p packets.Packet) (registry.State, error) {
		switch pkt := p.(type) {
		case *packets.EncryptionRequest:
			log.Printf("%s: server_id=%q public_key=%d bytes verify_token=%x", p.PacketName(), pkt.ServerID, len(pkt.PublicKey), pkt.VerifyToken)
		case *packets.SetCompression:
			compressionThreshold = pkt.Threshold
			log.Printf("%s: threshold=%d", p.PacketName(), pkt.Threshold)

			conn.SetCompression(int(pkt.Threshold), 6)
			log.Printf("compression enabled on the clientbound stream")
		case *packets.LoginSuccess:
			log.Printf("%s: uuid=%s username=%s", p.PacketName(), pkt.Profile.UUID, pkt.Profile.Username)
		}

		return "", nil
	}); err != nil {
		return fmt.Errorf("replaying clientbound stream: %w", err)
	}

	if sharedSecret == nil {
		return fmt.Errorf("capture never reached an EncryptionResponse packet")
	}

	log.Printf("replay complete: shared secret recovered and verified (%d bytes), compression threshold %d", len(sharedSecret), compressionThreshold)

	return nil
}

// replay reads consecutive frames from data, starting in startState, and
// invokes onPacket for each decoded packet. onPacket may return a non-empty
// State to switch the connection's dispatch state for subsequent frames
// (used for the Handshake→Login transition), and may call SetEncryption/
// SetCompression on the passed-in connection to apply them to frames still
// remaining in data.
func replay(data []byte, startState registry.State, dir registry.Direction, onPacket func(*mcconn.Connection, packets.Packet) (registry.State, error)) error {
	r := bytes.NewReader(data)
	conn := mcconn.New(io.Discard, r)
	conn.SetState(startState)

	for r.Len() > 0 {
		p, err := conn.ReadPacket(dir)
		if err != nil {
			return err
		}

		next, err := onPacket(conn, p)
		if err != nil {
			return err
		}

		if next != "" {
			conn.SetState(next)
		}
	}

	return nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	der := testkey.PrivateKeyDER
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		der = data
	}

	return x509.ParsePKCS1PrivateKey(der)
}
