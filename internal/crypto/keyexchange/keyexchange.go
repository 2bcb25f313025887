// Package keyexchange is a thin wrapper over decred's secp256k1 for key
// generation, ECDH and ECDSA. It does not reimplement any primitive; the
// curve engine in pkg/ecc is only used by tests to cross-check it.
package keyexchange

import (
	"crypto/sha256"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// SharedKeySize is the length of keys returned by DeriveSharedKey.
const SharedKeySize = 32

// hkdfInfo is the HKDF context string for derived session keys.
var hkdfInfo = []byte("handshake data")

// KeyPair holds a secp256k1 private key and its public key.
type KeyPair struct {
	Private *secp256k1.PrivateKey
	Public  *secp256k1.PublicKey
}

// GenerateKeyPair returns a fresh random key pair.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "keyexchange: generate private key")
	}
	return &KeyPair{Private: priv, Public: priv.PubKey()}, nil
}

// SharedSecret is just a wrapper of secp256k1.GenerateSharedSecret: the
// x-coordinate of priv * peer (RFC 5903 Section 9).
// Key Feature:
//
//	SharedSecret(APriv, BPub) == SharedSecret(BPriv, APub)
func SharedSecret(priv *secp256k1.PrivateKey, peer *secp256k1.PublicKey) []byte {
	return secp256k1.GenerateSharedSecret(priv, peer)
}

// DeriveSharedKey runs ECDH and expands the shared secret with
// HKDF-SHA256 (no salt) into SharedKeySize bytes.
func DeriveSharedKey(priv *secp256k1.PrivateKey, peer *secp256k1.PublicKey) ([]byte, error) {
	if priv == nil || peer == nil {
		return nil, errors.New("keyexchange: nil key")
	}
	kdf := hkdf.New(sha256.New, SharedSecret(priv, peer), nil, hkdfInfo)
	key := make([]byte, SharedKeySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, errors.Wrap(err, "keyexchange: derive key")
	}
	return key, nil
}

// Sign hashes message with SHA-256 and returns a DER encoded, RFC 6979
// deterministic ECDSA signature.
func Sign(priv *secp256k1.PrivateKey, message []byte) []byte {
	hash := sha256.Sum256(message)
	return ecdsa.Sign(priv, hash[:]).Serialize()
}

// Verify reports whether sig is a valid DER encoded signature of message
// under pub. Malformed signatures are reported as invalid.
func Verify(pub *secp256k1.PublicKey, sig, message []byte) bool {
	if pub == nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	hash := sha256.Sum256(message)
	return parsed.Verify(hash[:], pub)
}
