package restore

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var macFormat = regexp.MustCompile(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`)

func TestRandomXenMAC(t *testing.T) {
	for i := 0; i < 200; i++ {
		mac, err := randomXenMAC()
		require.NoError(t, err)
		assert.Regexp(t, macFormat, mac)

		octets := strings.Split(mac, ":")
		require.Len(t, octets, 6)

		b0, err := strconv.ParseInt(octets[0], 16, 16)
		require.NoError(t, err)
		b3, err := strconv.ParseInt(octets[3], 16, 16)
		require.NoError(t, err)

		assert.Equal(t, int64(0x02), b0&0x03, "locally administered + unicast bits must be set")
		assert.LessOrEqual(t, b3, int64(0x7F), "fourth byte must be restricted to 0x00-0x7F")
	}
}
