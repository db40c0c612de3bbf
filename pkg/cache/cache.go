// CLAUDE:SUMMARY Result cache for the service surfaces: Redis-backed (go-redis) or in-process, keyed by xxhash of lexicon fingerprint + input text.
package cache

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/hazyhaar/corrector-es/pkg/corrector"
)

// KeyPrefix namespaces every cache key.
const KeyPrefix = "corrector:"

// Cache stores correction results by key. A miss is (zero, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (corrector.Result, bool, error)
	Set(ctx context.Context, key string, res corrector.Result) error
	Close() error
}

// Key derives the cache key for text corrected with the lexicon identified
// by fingerprint. A lexicon change therefore never serves stale results.
func Key(fingerprint, text string) string {
	d := xxhash.New()
	d.WriteString(fingerprint)
	d.Write([]byte{0})
	d.WriteString(text)
	return KeyPrefix + fingerprint + ":" + strconv.FormatUint(d.Sum64(), 16)
}
