// Package cryptox implements salted one-way password hashing with argon2id.
//
// Hashes are stored as self-describing strings so parameters can be raised
// later without breaking existing records:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 key>
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	saltLen             = 16
)

// ErrMalformedHash is returned when a stored hash cannot be parsed.
var ErrMalformedHash = errors.New("malformed password hash")

var b64 = base64.RawStdEncoding

// DeriveKey stretches password with salt using the default argon2id
// parameters.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword hashes password with a fresh random salt and returns the
// encoded hash.
func HashPassword(password string) (string, error) {
	salt := common.GenerateRandByteArray(saltLen)
	key := DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(key)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches encoded. The comparison is
// constant-time.
func VerifyPassword(encoded string, password string) (bool, error) {
	p, err := parseHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	defer common.WipeByteArray(candidate)

	return subtle.ConstantTimeCompare(candidate, p.key) == 1, nil
}

type hashParams struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func parseHash(encoded string) (*hashParams, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, ErrMalformedHash
	}

	p := &hashParams{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, ErrMalformedHash
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return nil, ErrMalformedHash
	}

	var err error
	if p.salt, err = b64.DecodeString(parts[4]); err != nil || len(p.salt) == 0 {
		return nil, ErrMalformedHash
	}
	if p.key, err = b64.DecodeString(parts[5]); err != nil || len(p.key) == 0 {
		return nil, ErrMalformedHash
	}
	return p, nil
}
