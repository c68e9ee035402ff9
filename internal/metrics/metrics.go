// Package metrics expone las métricas Prometheus del servicio en un registro propio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wellness"

// Registry registro Prometheus de la aplicación (se sirve en /metrics).
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Métricas de negocio.
var (
	// EventsProposed cuenta eventos creados por tipo.
	EventsProposed = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_proposed_total",
			Help:      "Total de eventos propuestos por RRHH",
		},
		[]string{"event_type"},
	)

	// VendorMatches cuenta el resultado de la asignación de proveedor (matched / unmatched).
	VendorMatches = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vendor_match_total",
			Help:      "Resultado de la asignación automática de proveedor",
		},
		[]string{"result"},
	)

	// EventTransitions cuenta transiciones aplicadas por estado destino.
	EventTransitions = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_transitions_total",
			Help:      "Transiciones de estado aplicadas a eventos",
		},
		[]string{"status"},
	)

	// TransitionConflicts cuenta decisiones perdidas contra otra decisión concurrente o previa.
	TransitionConflicts = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_transition_conflicts_total",
			Help:      "Decisiones rechazadas porque el evento ya estaba procesado",
		},
	)
)
