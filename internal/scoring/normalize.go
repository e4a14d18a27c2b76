package scoring

import "strconv"

// NormalizeToPar converts a raw to-par token from the feed into a signed
// score. "E" (even par) is 0. Any token strconv can parse as a signed
// base-10 integer is that integer. Everything else (empty, dashes,
// "WD", malformed) reports ok=false and the caller treats the player
// as penalized.
func NormalizeToPar(raw string) (score int, ok bool) {
	if raw == "E" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
