package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/chimera/base/log"
)

const (
	defaultDdPort = 8125
	// flush after this many buffered metrics
	bufferMetrics = 10
)

var (
	clientOnce sync.Once
	client     statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// sharedClient lazily connects to the agent at datadog_host:datadog_port. Without a host
// metrics only show up in debug logs.
func sharedClient() statsCli {
	clientOnce.Do(func() {
		client = newStatsClient(viper.GetString("datadog_host"), viper.GetInt("datadog_port"))
	})
	return client
}

func newStatsClient(host string, port int) statsCli {
	if len(host) == 0 {
		return &LogClient{}
	}
	if port == 0 {
		port = defaultDdPort
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	c, err := statsd.New(addr, statsd.WithMaxMessagesPerPayload(bufferMetrics))
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("statsd.New failed")
		return &LogClient{}
	}
	log.Log().WithField("addr", addr).Info("connected to datadog agent")
	return c
}

// DDMetrics formats keys and tags for a statsd client
type DDMetrics struct {
	ddTags []string
	client func() statsCli
}

func (dm *DDMetrics) tags(tags []string) []string {
	all := make([]string, 0, len(dm.ddTags)+len(tags)/2)
	all = append(all, dm.ddTags...)
	return append(all, parseTag(tags)...)
}

func (dm *DDMetrics) report(fn string, key string, val float64, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": fn}).Error("Bump fail")
	}
}

// BumpAvg is reported as a gauge, statsd has no plain average
func (dm *DDMetrics) BumpAvg(key string, val, sampleRate float64, tags ...string) {
	dm.report("BumpAvg", key, val, dm.client().Gauge(key, val, dm.tags(tags), sampleRate))
}

func (dm *DDMetrics) BumpSum(key string, val, sampleRate float64, tags ...string) {
	dm.report("BumpSum", key, val, dm.client().Count(key, int64(val), dm.tags(tags), sampleRate))
}

func (dm *DDMetrics) BumpHistogram(key string, val, sampleRate float64, tags ...string) {
	dm.report("BumpHistogram", key, val, dm.client().Histogram(key, val, dm.tags(tags), sampleRate))
}

// BumpTime starts a timer reported on End
func (dm *DDMetrics) BumpTime(key string, sampleRate float64, tags ...string) Ender {
	return &ddTimeTracker{
		dm:         dm,
		start:      time.Now(),
		key:        key,
		tags:       dm.tags(tags),
		sampleRate: sampleRate,
	}
}

// parseTag turns key, value pairs into statsd key:value tags
func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type ddTimeTracker struct {
	dm         *DDMetrics
	start      time.Time
	key        string
	tags       []string
	sampleRate float64
}

func (dt *ddTimeTracker) End() {
	ms := float64(time.Since(dt.start)) / float64(time.Millisecond)
	dt.dm.report("BumpTime", dt.key, ms, dt.dm.client().TimeInMilliseconds(dt.key, ms, dt.tags, dt.sampleRate))
}
