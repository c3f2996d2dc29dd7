package redisx

import "time"

const (
	// Contact form rate limit window counter: rl:contact:{client_ip}
	KeyContactRate = "rl:contact:%s"

	// Contact form idempotency: idem:contact:{idempotency_key} -> submission_id
	KeyIdemContact = "idem:contact:%s"
)

var (
	TTLIdempotency = 24 * time.Hour
)
