package nats

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/constants"
	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testServer *server.Server

func TestMain(m *testing.M) {
	storeDir, err := os.MkdirTemp("", "heartfund-js-*")
	if err != nil {
		panic(err)
	}

	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = storeDir
	testServer = natsserver.RunServer(&opts)

	code := m.Run()

	testServer.Shutdown()
	os.RemoveAll(storeDir)
	os.Exit(code)
}

func TestNewClient_InvalidURL(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1")

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestEnsureStreams_AndList(t *testing.T) {
	client, err := NewClient(testServer.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.EnsureStreams(ctx, DefaultStreamConfigs()))
	// idempotent
	require.NoError(t, client.EnsureStreams(ctx, DefaultStreamConfigs()))

	names, err := client.StreamNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, constants.StreamDonation)
	assert.True(t, client.IsConnected())
}

func TestConsumeMessages_AcksHandledMessages(t *testing.T) {
	client, err := NewClient(testServer.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.EnsureStreams(ctx, DefaultStreamConfigs()))

	cfg := NewConsumerConfigBuilder(constants.StreamDonation, "test_consumer").
		WithSubject(constants.SubjectDonationCompleted).
		WithDeliverPolicy(jetstream.DeliverNewPolicy).
		Build()
	require.NoError(t, client.CreateConsumer(ctx, cfg))

	received := make(chan []byte, 1)
	require.NoError(t, client.ConsumeMessages(constants.StreamDonation, "test_consumer", func(msg jetstream.Msg) error {
		received <- msg.Data()
		return nil
	}))

	require.NoError(t, client.Publish(ctx, constants.SubjectDonationCompleted, []byte(`{"transaction_id":"TX-1"}`)))

	select {
	case data := <-received:
		assert.JSONEq(t, `{"transaction_id":"TX-1"}`, string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestConsumeMessages_UnknownConsumer(t *testing.T) {
	client, err := NewClient(testServer.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	err = client.ConsumeMessages(constants.StreamDonation, "missing", func(msg jetstream.Msg) error { return nil })

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDefaultConsumerConfigs(t *testing.T) {
	cfg, ok := DefaultConsumerConfigs()[constants.ConsumerDonationCompletedActivity]
	require.True(t, ok)

	assert.Equal(t, constants.StreamDonation, cfg.StreamName)
	assert.Equal(t, constants.SubjectDonationCompleted, cfg.FilterSubject)
	assert.Equal(t, jetstream.AckExplicitPolicy, cfg.AckPolicy)
	assert.Equal(t, 5, cfg.MaxDeliver)
}

func TestDefaultConsumerConfigs_ReconciliationAudit(t *testing.T) {
	cfg, ok := DefaultConsumerConfigs()[constants.ConsumerReconciliationAudit]
	require.True(t, ok)

	assert.Equal(t, constants.StreamDonation, cfg.StreamName)
	assert.Equal(t, constants.SubjectDonationReconciliation, cfg.FilterSubject)
	assert.Equal(t, jetstream.DeliverAllPolicy, cfg.DeliverPolicy)
}
