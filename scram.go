package rethinkdb

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// scramKeys holds the material derived from a SCRAM-SHA-256 exchange
// (spec.md §4.4 step 3): ClientProof authenticates the client to the
// server, and ServerSignature lets the client authenticate the server in
// the final message.
type scramKeys struct {
	ClientProof     []byte
	ServerSignature []byte
}

// deriveScramKeys implements RFC 7677's SCRAM-SHA-256 key schedule:
//
//	SaltedPassword = PBKDF2-HMAC-SHA256(password, salt, iterations)
//	ClientKey      = HMAC(SaltedPassword, "Client Key")
//	StoredKey      = SHA256(ClientKey)
//	ClientSignature = HMAC(StoredKey, authMessage)
//	ClientProof    = ClientKey XOR ClientSignature
//	ServerKey      = HMAC(SaltedPassword, "Server Key")
//	ServerSignature = HMAC(ServerKey, authMessage)
func deriveScramKeys(password string, salt []byte, iterations int, authMessage string) scramKeys {
	saltedPassword := pbkdf2.Key([]byte(password), salt, iterations, sha256.Size, sha256.New)

	clientKey := hmacSum(saltedPassword, []byte("Client Key"))
	storedKey := sha256Sum(clientKey)
	clientSignature := hmacSum(storedKey, []byte(authMessage))
	clientProof := xorBytes(clientKey, clientSignature)

	serverKey := hmacSum(saltedPassword, []byte("Server Key"))
	serverSignature := hmacSum(serverKey, []byte(authMessage))

	return scramKeys{ClientProof: clientProof, ServerSignature: serverSignature}
}

func hmacSum(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// generateClientNonce returns fresh, unguessable nonce material for a new
// handshake. Connect passes it to performHandshake, which takes the nonce
// source as a parameter.
func generateClientNonce() string {
	return base64.RawStdEncoding.EncodeToString(uuidBytes())
}

func uuidBytes() []byte {
	id := uuid.New()
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

// randomBytes returns n bytes from crypto/rand. Nothing in the package
// calls it: generateClientNonce always draws its nonce from google/uuid.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
