package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (OWASP recommendation).
const (
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 1
	argonKeyLen  = 32
	argonSaltLen = 16

	phcParts = 6
)

// HashPassword hashes password with Argon2id and returns a PHC string:
// $argon2id$v=19$m=65536,t=3,p=1$<salt>$<hash>
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks password against a PHC hash in constant time.
func VerifyPassword(password, encodedHash string) (bool, error) {
	p, err := decodePHC(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), p.salt, p.time, p.memory, p.threads, uint32(len(p.hash))) //nolint:gosec // hash length always fits uint32

	return subtle.ConstantTimeCompare(p.hash, candidate) == 1, nil
}

type phcHash struct {
	time    uint32
	memory  uint32
	threads uint8
	salt    []byte
	hash    []byte
}

func decodePHC(encoded string) (phcHash, error) {
	var p phcHash

	parts := strings.Split(encoded, "$")
	if len(parts) != phcParts {
		return p, fmt.Errorf("%w: expected %d fields", ErrInvalidHash, phcParts)
	}
	if parts[1] != "argon2id" {
		return p, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, fmt.Errorf("%w: parsing version: %w", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return p, fmt.Errorf("%w: unsupported version %d", ErrInvalidHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, fmt.Errorf("%w: parsing parameters: %w", ErrInvalidHash, err)
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return p, fmt.Errorf("%w: decoding salt: %w", ErrInvalidHash, err)
	}
	if p.hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return p, fmt.Errorf("%w: decoding hash: %w", ErrInvalidHash, err)
	}
	if len(p.hash) == 0 {
		return p, fmt.Errorf("%w: empty hash", ErrInvalidHash)
	}

	return p, nil
}
