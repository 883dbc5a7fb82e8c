// Package smime defines the CMS capability the message parser delegates
// to for S/MIME envelope decryption and detached-signature verification,
// plus a default implementation backed by go.mozilla.org/pkcs7.
//
// The parser never imports a cryptographic primitive directly: it only
// ever calls through the Provider interface, so a host can supply its
// own certificate/trust-store-aware implementation and the default here
// is purely an optional convenience adapter.
package smime

import (
	"crypto"
	"crypto/x509"

	"go.mozilla.org/pkcs7"
)

// Provider is the injected CMS capability. Both operations are expected
// to be pure functions of their inputs: the parser calls at most one of
// each per multipart/pkcs7 part it encounters.
type Provider interface {
	// DecryptEnvelope decrypts an application/pkcs7-mime envelope,
	// returning the plaintext MIME blob it wraps. ok is false if
	// decryption failed or the envelope could not be decoded.
	DecryptEnvelope(envelope []byte) (plaintext []byte, ok bool)

	// VerifySignature verifies a detached application/pkcs7-signature
	// block against its signed content sibling.
	VerifySignature(signature, content []byte) bool
}

// PKCS7Provider is the default Provider, backed by go.mozilla.org/pkcs7.
//
// Decrypting a real envelope requires the recipient's certificate and
// private key; since certificate-store and trust-policy management are
// out of this module's scope, Cert/Key are supplied by the host when it
// has them. Without them, DecryptEnvelope still handles the common
// degenerate case of a pkcs7-mime part that carries signed-data rather
// than an encrypted envelope (no private key needed to read it).
type PKCS7Provider struct {
	Cert *x509.Certificate
	Key  crypto.PrivateKey
}

// DecryptEnvelope implements Provider.
func (p PKCS7Provider) DecryptEnvelope(envelope []byte) ([]byte, bool) {
	p7, err := pkcs7.Parse(envelope)
	if err != nil {
		return nil, false
	}
	if p.Cert != nil && p.Key != nil {
		plain, err := p7.Decrypt(p.Cert, p.Key)
		if err != nil {
			return nil, false
		}
		return plain, true
	}
	if len(p7.Content) > 0 {
		return p7.Content, true
	}
	return nil, false
}

// VerifySignature implements Provider.
func (p PKCS7Provider) VerifySignature(signature, content []byte) bool {
	p7, err := pkcs7.Parse(signature)
	if err != nil {
		return false
	}
	p7.Content = content
	return p7.Verify() == nil
}
