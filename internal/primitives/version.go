// Package primitives provides versioning utilities for Script.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion computes a deterministic version for a Script.
// Priority: user-provided script.Version, else SHA256 of the script JSON (first 8 bytes).
func ComputeVersion(script *Script) string {
	if script.Version != "" {
		return script.Version
	}

	unversioned := *script
	unversioned.Version = ""
	data, err := json.Marshal(unversioned)
	if err != nil {
		// Fallback (should not happen for a validated script)
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
