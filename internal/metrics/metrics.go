// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the character service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "char_keeper"

// Selection results reported by [Metrics.MainCharacterSelected].
const (
	SelectionMatched  = "matched"
	SelectionFallback = "fallback"
	SelectionEmpty    = "empty"
	SelectionFailed   = "failed"
)

type Metrics struct {
	mainSelections *prometheus.CounterVec
	repairedUsers  prometheus.Counter
}

// New creates the collectors and registers them on reg. A nil reg leaves the
// collectors unregistered, which is what tests and tools usually want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		mainSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "main_character_selections_total",
			Help:      "Main character selections by result.",
		}, []string{"result"}),
		repairedUsers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "main_character_repairs_total",
			Help:      "Users whose main character flag was repaired by the background worker.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.mainSelections, m.repairedUsers)
	}

	return m
}

// MainCharacterSelected counts one SetMainCharacter outcome.
func (m *Metrics) MainCharacterSelected(result string) {
	if m == nil {
		return
	}
	m.mainSelections.WithLabelValues(result).Inc()
}

func (m *Metrics) UserRepaired() {
	if m == nil {
		return
	}
	m.repairedUsers.Inc()
}
