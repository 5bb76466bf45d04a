package asynqserver

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/cache"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/queue/task"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/worker"
)

func TestRedisOptions(t *testing.T) {
	var cfg config.Cache
	cfg.Type = cache.RedisTypeSingle
	cfg.Redis.Address = "localhost:6379"
	assert.Equal(t, asynq.RedisClientOpt{Addr: "localhost:6379"}, RedisOptions(cfg))

	cfg.Type = cache.RedisTypeCluster
	cfg.RedisCluster.Addresses = []string{"a:7000", "b:7001"}
	assert.Equal(t, asynq.RedisClusterClientOpt{Addrs: []string{"a:7000", "b:7001"}}, RedisOptions(cfg))
}

func TestGetQueues(t *testing.T) {
	_, queues := getQueues(&worker.Workers{})
	assert.Equal(t, map[string]int{task.ExportTableQueueName: 1}, queues)
}
