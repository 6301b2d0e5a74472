package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/Asim-Shaik/Steganography-CLI/frame"
)

// writeKeyFile writes key's base64 encoding as a single line to path.
func writeKeyFile(path string, key []byte) error {
	enc := base64.StdEncoding.EncodeToString(key)
	return os.WriteFile(path, []byte(enc+"\n"), 0o600)
}

// readKey resolves a -k argument: if it names an existing file, its
// contents are read and base64-decoded; otherwise the argument itself is
// treated as a base64-encoded key.
func readKey(arg string) ([]byte, error) {
	var encoded string
	if data, err := os.ReadFile(arg); err == nil {
		encoded = strings.TrimSpace(string(data))
	} else {
		encoded = strings.TrimSpace(arg)
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(key) != frame.KeySize {
		return nil, fmt.Errorf("key must decode to %d bytes, got %d", frame.KeySize, len(key))
	}
	return key, nil
}
