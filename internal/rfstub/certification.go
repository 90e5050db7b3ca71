package rfstub

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	certificationPrefixConstant       = "CERT-"
	certificationDigestLengthConstant = 12
)

// CertificationStub produces digest identifiers for payloads. It carries no
// cryptographic certification semantics beyond the identifier itself.
type CertificationStub struct{}

// CertifyPayload returns a deterministic digest identifier for the payload.
func (stub CertificationStub) CertifyPayload(payload []byte) string {
	digest := sha256.Sum256(payload)
	encoded := hex.EncodeToString(digest[:])
	return certificationPrefixConstant + encoded[:certificationDigestLengthConstant]
}
