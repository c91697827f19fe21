// Package attest produces the signatures that authorize on-chain offer
// transitions. The encoding is fixed by the execution contract: the message
// is abi.encodePacked(uint256 offerId, bool result), the digest is its
// keccak256 hash, and the signature is recoverable secp256k1 with V in
// {27, 28}.
package attest

import (
	"crypto/ecdsa"
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"

	"boostoracle/internal/domain"
)

// Signer holds the attestor key. The key is parsed once at construction and
// is immutable for the process lifetime; it must never appear in logs.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner parses a hex-encoded secp256k1 private key (with or without a
// 0x prefix).
func NewSigner(hexKey string) (*Signer, error) {
	if len(hexKey) >= 2 && hexKey[0:2] == "0x" {
		hexKey = hexKey[2:]
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse attestor key: %w", err)
	}
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the attestor address signatures recover to.
func (s *Signer) Address() common.Address {
	return s.address
}

// Digest computes the keccak256 hash of the tightly packed (offerId, result)
// pair. The packing is byte-exact with the contract side: 32 bytes of
// big-endian uint256 followed by one bool byte.
func Digest(offerID domain.OfferID, result bool) [32]byte {
	var msg [33]byte
	binary.BigEndian.PutUint64(msg[24:32], uint64(offerID))
	if result {
		msg[32] = 1
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(msg[:])

	var digest [32]byte
	h.Sum(digest[:0])
	return digest
}

// Sign attests to (offerId, result). The same pair always hashes to the same
// digest; recipients verify by public-key recovery rather than byte equality.
func (s *Signer) Sign(offerID domain.OfferID, result bool) (domain.Signature, error) {
	digest := Digest(offerID, result)

	raw, err := crypto.Sign(digest[:], s.key)
	if err != nil {
		return domain.Signature{}, fmt.Errorf("sign attestation: %w", err)
	}

	var sig domain.Signature
	copy(sig.R[:], raw[0:32])
	copy(sig.S[:], raw[32:64])
	sig.V = raw[64] + 27
	return sig, nil
}

// Recover returns the address that produced sig over (offerId, result).
func Recover(offerID domain.OfferID, result bool, sig domain.Signature) (common.Address, error) {
	digest := Digest(offerID, result)

	raw := make([]byte, 65)
	copy(raw[0:32], sig.R[:])
	copy(raw[32:64], sig.S[:])
	raw[64] = sig.V - 27

	pub, err := crypto.SigToPub(digest[:], raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover attestor: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
