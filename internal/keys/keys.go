// Package keys handles the account signing key: decoding the bech32
// secret from the environment, deriving the on-chain address, and
// signing transaction bytes returned by the node.
package keys

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	// privKeyHRP is the human-readable prefix of an encoded Sui secret key.
	privKeyHRP = "suiprivkey"

	// SchemeED25519 is the signature scheme flag byte for ed25519 keys,
	// used both in key encoding and in address derivation.
	SchemeED25519 byte = 0x00
)

// intentTransactionData is the signing-intent prefix for transaction
// data: scope=TransactionData, version=0, app=Sui.
var intentTransactionData = []byte{0, 0, 0}

// Keypair holds the decoded signing key for the lifetime of the
// process. The raw key never leaves this package and is never logged.
type Keypair struct {
	priv    ed25519.PrivateKey
	pub     ed25519.PublicKey
	address string
	seedHex string
}

// FromEnv reads the encoded secret key from the named environment
// variable and decodes it. A malformed or missing secret is fatal to
// the caller; there is no recovery path.
func FromEnv(name string) (*Keypair, error) {
	encoded := strings.TrimSpace(os.Getenv(name))
	if encoded == "" {
		return nil, fmt.Errorf("%s is not set", name)
	}
	return ParsePrivateKey(encoded)
}

// ParsePrivateKey decodes a bech32 "suiprivkey1..." string into a
// usable keypair. The payload is a scheme flag byte followed by the
// 32-byte ed25519 seed.
func ParsePrivateKey(encoded string) (*Keypair, error) {
	hrp, data, err := bech32.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if hrp != privKeyHRP {
		return nil, fmt.Errorf("unexpected private key prefix %q", hrp)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("convert private key bits: %w", err)
	}
	if len(raw) != 1+ed25519.SeedSize {
		return nil, fmt.Errorf("unexpected private key payload length %d", len(raw))
	}
	if raw[0] != SchemeED25519 {
		return nil, fmt.Errorf("unsupported signature scheme flag 0x%02x", raw[0])
	}

	seed := raw[1:]
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	return &Keypair{
		priv:    priv,
		pub:     pub,
		address: deriveAddress(pub),
		seedHex: hex.EncodeToString(seed),
	}, nil
}

// deriveAddress computes the account address: blake2b-256 over the
// scheme flag byte followed by the public key.
func deriveAddress(pub ed25519.PublicKey) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte{SchemeED25519})
	h.Write(pub)
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// Address returns the account address derived from the key. Immutable
// for the process lifetime.
func (k *Keypair) Address() string {
	return k.address
}

// SeedHex returns the hex encoding of the raw key material.
func (k *Keypair) SeedHex() string {
	return k.seedHex
}

// SignTransactionBlock signs base64 transaction bytes as built by the
// node. The signature is ed25519 over the blake2b-256 digest of the
// intent prefix plus the transaction data, serialized as
// flag || signature || pubkey and base64-encoded.
func (k *Keypair) SignTransactionBlock(txBytesB64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(txBytesB64)
	if err != nil {
		return "", fmt.Errorf("decode transaction bytes: %w", err)
	}

	msg := make([]byte, 0, len(intentTransactionData)+len(raw))
	msg = append(msg, intentTransactionData...)
	msg = append(msg, raw...)
	digest := blake2b.Sum256(msg)

	sig := ed25519.Sign(k.priv, digest[:])

	serialized := make([]byte, 0, 1+len(sig)+len(k.pub))
	serialized = append(serialized, SchemeED25519)
	serialized = append(serialized, sig...)
	serialized = append(serialized, k.pub...)
	return base64.StdEncoding.EncodeToString(serialized), nil
}
