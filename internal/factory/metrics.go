package factory

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/aws-samples/eks-notifier/internal/config"
)

const pushJob = "eks_notifier"

func CreatePrometheusServer(conf config.Metrics, gatherer prometheus.Gatherer) *http.Server {
	ret := &http.Server{Addr: fmt.Sprintf(":%v", conf.Port)}
	ret.SetKeepAlivesEnabled(true)
	ret.IdleTimeout = 5 * time.Second

	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	ret.Handler = router

	return ret
}

// PushMetrics sends the gathered metrics to a Pushgateway. It does nothing without a push url.
func PushMetrics(conf config.Metrics, gatherer prometheus.Gatherer, grouping map[string]string) error {
	if conf.PushURL == "" {
		return nil
	}

	pusher := push.New(conf.PushURL, pushJob).Gatherer(gatherer)
	for name, value := range grouping {
		pusher = pusher.Grouping(name, value)
	}

	err := pusher.Add()
	if err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", conf.PushURL, err)
	}

	return nil
}
