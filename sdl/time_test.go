package sdl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeStdRoundTrip(t *testing.T) {
	stamp := time.Date(2024, 5, 17, 12, 30, 45, 123456789, time.UTC)
	converted := TimeFromStd(stamp)
	assert.EqualValues(t, stamp.UnixNano(), converted)
	assert.True(t, converted.Std().Equal(stamp))
}
