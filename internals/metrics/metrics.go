package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "praktikum", Name: "http_requests_total", Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "praktikum", Name: "http_request_duration_seconds", Help: "HTTP latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	NilaiUpserts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "praktikum", Name: "nilai_upserts_total", Help: "Grade upserts",
	})
	LaporanUploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "praktikum", Name: "laporan_uploads_total", Help: "Report uploads by result",
	}, []string{"result"})
	LaporanBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "praktikum", Name: "laporan_upload_bytes_total", Help: "Stored report bytes",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "praktikum", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
	BlacklistPurged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "praktikum", Name: "token_blacklist_purged_total", Help: "Expired blacklist rows removed",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, NilaiUpserts, LaporanUploads, LaporanBytes, DBPing, BlacklistPurged)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
