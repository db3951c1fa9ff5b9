package messaging

import (
	"fmt"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/pkg/constvars"
	"log"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const dialRetryInterval = 2 * time.Second

// NewRabbitMQ dials the broker, retrying while it is still starting up.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	url := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(constvars.ServiceName)
	dialConfig := amqp091.Config{
		Heartbeat:  10 * time.Second,
		Properties: properties,
	}

	attempts := driverConfig.RabbitMQ.DialAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err := amqp091.DialConfig(url, dialConfig)
		if err == nil {
			log.Println("Successfully connected to rabbitMQ")
			return conn
		}
		lastErr = err
		log.Printf("RabbitMQ dial attempt %d/%d failed: %v", attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(dialRetryInterval)
		}
	}

	log.Fatalf("Failed to connect to rabbitMQ: %s", lastErr.Error())
	return nil
}
