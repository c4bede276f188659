package hnpx

import (
	"crypto/rand"
	"regexp"
)

// idAlphabet is the 36-symbol id alphabet: lowercase ascii letters plus
// digits. With fixed length 6 the space is ~2.1e9 ids, intentionally
// shallow so ids stay human-skimmable.
const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6

	// idMaxAttempts bounds collision retries in Generate. The registry is
	// reseeded from the live document on every load, so exhaustion is an
	// operational signal that the id space is saturated, not a bug.
	idMaxAttempts = 3
)

var idRE = regexp.MustCompile(`^[a-z0-9]{6}$`)

// ValidID reports whether id is a well-formed 6-character HNPX identifier.
func ValidID(id string) bool {
	return idRE.MatchString(id)
}

// IDRegistry tracks every identifier in use by one document and mints
// fresh ones. It is reseeded from the live id set on load rather than
// persisted.
type IDRegistry struct {
	ids map[string]struct{}

	// readRand fills b with random bytes; replaced in tests to force
	// collisions.
	readRand func(b []byte) error
}

// NewIDRegistry returns an empty registry backed by crypto/rand.
func NewIDRegistry() *IDRegistry {
	return &IDRegistry{
		ids: make(map[string]struct{}),
		readRand: func(b []byte) error {
			_, err := rand.Read(b)
			return err
		},
	}
}

// Generate returns a fresh id unseen in the current document and registers
// it. After idMaxAttempts collisions it fails with ID_EXHAUSTED.
func (r *IDRegistry) Generate() (string, error) {
	for attempt := 0; attempt < idMaxAttempts; attempt++ {
		b := make([]byte, idLength)
		if err := r.readRand(b); err != nil {
			return "", &Error{Code: CodeIDExhausted, Message: "id generation failed: " + err.Error()}
		}
		for i := range b {
			b[i] = idAlphabet[int(b[i])%len(idAlphabet)]
		}
		id := string(b)
		if _, taken := r.ids[id]; taken {
			continue
		}
		r.ids[id] = struct{}{}
		return id, nil
	}
	return "", &Error{Code: CodeIDExhausted, Message: "could not generate a unique id: id space saturated"}
}

// Register records an externally supplied id as in use.
func (r *IDRegistry) Register(id string) {
	r.ids[id] = struct{}{}
}

// Release removes id from the in-use set, making it available again.
func (r *IDRegistry) Release(id string) {
	delete(r.ids, id)
}

// Has reports whether id is currently in use.
func (r *IDRegistry) Has(id string) bool {
	_, ok := r.ids[id]
	return ok
}

// Len returns the number of registered ids.
func (r *IDRegistry) Len() int {
	return len(r.ids)
}
