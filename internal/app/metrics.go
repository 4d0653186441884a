package app

import "github.com/adanyl0v/checklist/internal/metrics"

var globalMetrics = metrics.New()
