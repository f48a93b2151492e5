package kafka

import (
	"errors"

	"github.com/IBM/sarama"
)

const (
	AuditTopic = "gateway-audit"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

// CreateTopics ensures the audit topic exists. An already-exists error is
// not a failure so restarts stay clean.
func CreateTopics(cfg Config) error {
	adminCfg := sarama.NewConfig()
	adminCfg.Version = sarama.V2_1_0_0

	admin, err := sarama.NewClusterAdmin(cfg.Addrs, adminCfg)
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopic(AuditTopic, &sarama.TopicDetail{
		NumPartitions:     1,
		ReplicationFactor: 1,
	}, false)

	var topicErr *sarama.TopicError
	if errors.As(err, &topicErr) && topicErr.Err == sarama.ErrTopicAlreadyExists {
		return nil
	}
	return err
}
