package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewStamp returns a fresh identity stamp for a question or bank entry.
// Stamps must be unique across the whole store, not just per category, so
// the random part is drawn from crypto/rand rather than a counter.
func NewStamp() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// there is no sane recovery at this level.
		panic(fmt.Sprintf("stamp: read random: %v", err))
	}
	return fmt.Sprintf("quizforge+%d+%s", time.Now().Unix(), hex.EncodeToString(buf))
}
