package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/shenikar/tourist_safety/internal/notify"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	body      []byte
	signature string
	ctype     string
}

func newTestServer(t *testing.T, status int) (*httptest.Server, chan captured, *int32) {
	received := make(chan captured, 4)
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		body, _ := io.ReadAll(r.Body)
		received <- captured{
			body:      body,
			signature: r.Header.Get(SignatureHeader),
			ctype:     r.Header.Get("Content-Type"),
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, received, &hits
}

func newTestDispatcher(url, secret string) *Dispatcher {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewDispatcher(NewSender(url, secret, time.Second), logger)
}

func alertPayload(t *testing.T) []byte {
	t.Helper()
	payload, err := json.Marshal(notify.AlertEvent{
		Type: notify.EventNewAlert,
		Data: &models.Alert{
			ID:          uuid.New(),
			TouristID:   "tourist-1",
			TouristName: "Anna",
			AlertType:   models.AlertTypePanic,
			RiskScore:   100,
			Status:      models.AlertStatusPending,
		},
	})
	require.NoError(t, err)
	return payload
}

func runDispatcher(t *testing.T, d *Dispatcher, payloads ...[]byte) {
	t.Helper()
	messages := make(chan []byte, len(payloads))
	for _, p := range payloads {
		messages <- p
	}
	close(messages)
	require.NoError(t, d.Run(context.Background(), messages))
}

func TestDispatcher_DeliversSignedPayload(t *testing.T) {
	srv, received, hits := newTestServer(t, http.StatusOK)
	payload := alertPayload(t)

	runDispatcher(t, newTestDispatcher(srv.URL, "s3cret"), payload)

	require.Equal(t, int32(1), atomic.LoadInt32(hits))
	got := <-received
	assert.JSONEq(t, string(payload), string(got.body))
	assert.Equal(t, "application/json", got.ctype)
	assert.Equal(t, Sign(got.body, "s3cret"), got.signature)
}

func TestDispatcher_NoSecretNoSignature(t *testing.T) {
	srv, received, _ := newTestServer(t, http.StatusAccepted)

	runDispatcher(t, newTestDispatcher(srv.URL, ""), alertPayload(t))

	got := <-received
	assert.Empty(t, got.signature)
}

func TestDispatcher_FailureIsNotRetried(t *testing.T) {
	srv, _, hits := newTestServer(t, http.StatusInternalServerError)

	runDispatcher(t, newTestDispatcher(srv.URL, "s3cret"), alertPayload(t))

	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestDispatcher_SkipsMalformedEvents(t *testing.T) {
	srv, _, hits := newTestServer(t, http.StatusOK)

	runDispatcher(t, newTestDispatcher(srv.URL, ""), []byte("not json"), []byte(`{"type":"other"}`))

	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newTestDispatcher("http://127.0.0.1:1", "").Run(ctx, make(chan []byte))
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
