package obs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTimeLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithRequestID(zerolog.New(&buf).WithContext(context.Background()), "req-1")

	err := errors.New("boom")
	Time(ctx, "arcs_from_origin")(&err)

	out := buf.String()
	assert.Contains(t, out, `"op":"arcs_from_origin"`)
	assert.Contains(t, out, `"req_id":"req-1"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestTimeLogsSuccessAtDebug(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	var err error
	Time(ctx, "write_arcs")(&err)

	assert.Contains(t, buf.String(), `"message":"operation done"`)
	assert.Contains(t, buf.String(), `"dur_ms":`)
}

func TestTimeWithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Time(context.Background(), "noop")(nil)
	})
}
