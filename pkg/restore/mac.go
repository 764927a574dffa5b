package restore

import (
	"crypto/rand"
	"fmt"
)

// randomXenMAC generates a Xen-locally-administered MAC address: six
// random bytes with byte 0 masked to mark it locally administered and
// unicast, and byte 3 restricted to the low 7 bits — the exact
// algorithm of lib/functions.py:random_xen_mac.
func randomXenMAC() (string, error) {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("restore: generating mac: %w", err)
	}
	b[0] = (b[0] & 0xFC) | 0x02
	b[3] &= 0x7F

	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", b[0], b[1], b[2], b[3], b[4], b[5]), nil
}
