package testcontainers

// Kafka constants
const (
	KafkaContainerName = "kafka"
	KafkaImageName     = "confluentinc/confluent-local:7.5.0"

	// Kafka environment variables
	KafkaImageNameKey = "KAFKA_IMAGE_NAME"
	KafkaClusterIDKey = "KAFKA_CLUSTER_ID"
)
