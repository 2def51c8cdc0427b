package nsq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProducer_Unreachable(t *testing.T) {
	producer, err := NewProducer("127.0.0.1:1")

	assert.Nil(t, producer)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping NSQ daemon")
}

func TestNewProducer_InvalidAddress(t *testing.T) {
	producer, err := NewProducer("")

	assert.Nil(t, producer)
	assert.Error(t, err)
}

func TestProducer_Publish_MarshalError(t *testing.T) {
	p := &Producer{}

	err := p.Publish("transactions.seeded", make(chan int))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
