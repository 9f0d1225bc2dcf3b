// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package handle derives pseudonymous display names from email addresses.
package handle

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// Both lists are fixed at 20 entries and order-sensitive: reordering or
// resizing them changes every handle ever generated.
var adjectives = [20]string{
	"Latency", "Resilient", "Async", "Distributed", "Cached",
	"Indexed", "Parallel", "Atomic", "Eventual", "Consistent",
	"Sharded", "Replicated", "Fault", "Load", "Queue",
	"Stream", "Batch", "Pipeline", "Circuit", "Retry",
}

var animals = [20]string{
	"Llama", "Falcon", "Otter", "Badger", "Raven",
	"Panda", "Wolf", "Hawk", "Fox", "Bear",
	"Lynx", "Crane", "Viper", "Shark", "Eagle",
	"Cobra", "Tiger", "Bison", "Moose", "Whale",
}

// Generate maps an email address to a stable pseudonym of the form
// "<Adjective> <Animal> #NNNN". The mapping is deterministic and
// case/whitespace insensitive. SHA-256 keeps the output non-invertible;
// with only ~4M combinations, collisions between distinct engineers are
// expected and accepted.
func Generate(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := sha256.Sum256([]byte(normalized))

	adj := adjectives[int(sum[0])%len(adjectives)]
	animal := animals[int(sum[1])%len(animals)]
	num := int(binary.BigEndian.Uint16(sum[2:4])) % 10000

	return fmt.Sprintf("%s %s #%04d", adj, animal, num)
}
