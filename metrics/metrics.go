// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus export of engine activity
//
// counters are cumulative over the daemon lifetime, gauges are read
// on scrape through registered reader functions
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tesserad"

var operations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "completed ledger operations by name",
	},
	[]string{"operation"},
)

// Operation - count one completed operation
func Operation(name string) {
	operations.WithLabelValues(name).Inc()
}

// RegisterGauge - export a gauge backed by a reader function
//
// call once per name, a duplicate registration panics
func RegisterGauge(name string, help string, read func() float64) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		read,
	)
}

// Handler - the scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
