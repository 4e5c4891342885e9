package txstore

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/poseidoncompute/poseidonstore/internal/txstore"

var tracer = otel.Tracer(instrumentationName)

// instruments groups the counters reported by AddTransaction.
type instruments struct {
	inserted  metric.Int64Counter
	duplicate metric.Int64Counter
	fetched   metric.Int64Counter
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	return instruments{
		inserted: counter(meter, "poseidon.transactions.inserted",
			"Transactions added to an account record"),
		duplicate: counter(meter, "poseidon.transactions.duplicate",
			"AddTransaction calls for a signature already on the record"),
		fetched: counter(meter, "poseidon.transactions.fetched",
			"Transaction payloads fetched from the transaction source"),
	}
}

// counter falls back to a no-op counter if the meter rejects the instrument.
func counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit("{transaction}"))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}
