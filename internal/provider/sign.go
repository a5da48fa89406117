package provider

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// sign computes the request signature the provider verifies: the parameters
// sorted by key, joined as k=v pairs with '&', the secret key appended, then
// md5 applied twice (the second pass hashes the hex digest of the first).
func sign(params map[string]string, key string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
		b.WriteByte('&')
	}
	b.WriteString(key)

	first := md5.Sum([]byte(b.String()))
	second := md5.Sum([]byte(hex.EncodeToString(first[:])))
	return hex.EncodeToString(second[:])
}
