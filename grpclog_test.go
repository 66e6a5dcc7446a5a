package templatesvc

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGRPCLogger(t *testing.T) {
	var buf bytes.Buffer
	gl := GRPCLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	gl.Info("hidden")
	gl.Warningf("conn %d reset", 3)
	assert.False(t, gl.V(0))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"message":"conn 3 reset"`)
	assert.Contains(t, buf.String(), `"component":"grpc"`)

	buf.Reset()
	gl = GRPCLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	gl.Infoln("shown")
	assert.True(t, gl.V(2))
	assert.Contains(t, buf.String(), `"level":"debug"`)
}
