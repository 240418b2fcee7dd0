package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const rabbitImage = "rabbitmq:3.13-alpine"

// RabbitMQ is a throwaway broker bound to a single test.
type RabbitMQ struct {
	URL string

	container testcontainers.Container
}

// StartRabbitMQ runs a broker container and returns its AMQP URL. Callers
// connect with the same dialer the application uses. The container is
// terminated through t.Cleanup.
func StartRabbitMQ(t *testing.T) *RabbitMQ {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        rabbitImage,
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	mq := &RabbitMQ{container: container}
	t.Cleanup(mq.terminate)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672")
	require.NoError(t, err)

	mq.URL = fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
	return mq
}

func (r *RabbitMQ) terminate() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = r.container.Terminate(ctx)
}
