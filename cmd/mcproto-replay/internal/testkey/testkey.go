// Package testkey bundles the PKCS#1 RSA private key used to decrypt the
// shared secret in the replay tool's sample captures. It exists only to
// make `mcproto-replay` runnable without an operator-supplied key; it is
// not a key any real server should ever use.
package testkey

import (
	_ "embed"
)

//go:embed server_key.der
var PrivateKeyDER []byte
