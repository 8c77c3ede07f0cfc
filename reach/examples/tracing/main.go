// Command tracing wires a real OpenTelemetry SDK TracerProvider, with a
// stdout exporter, to a Builder and Tracker, in the pattern the teacher
// engine's graph/emit/otel.go documents for its own OTelEmitter: set up
// the provider, call otel.Tracer(name) to obtain a trace.Tracer, and hand
// it to the library via a functional option (WithTracer here;
// emit.NewOTelEmitter there). Every Builder.Build, Builder.IsAcyclic, and
// Tracker.PropagateAll span that results is printed to stdout as JSON by
// the exporter when the provider shuts down.
package main

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dshills/reach/reach"
	"github.com/dshills/reach/reach/inttime"
)

func main() {
	ctx := context.Background()

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("failed to create stdout trace exporter: %v", err)
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)
	defer func() {
		if err := provider.Shutdown(ctx); err != nil {
			log.Fatalf("failed to shut down tracer provider: %v", err)
		}
	}()

	tracer := otel.Tracer("reach")

	builder := reach.NewBuilder[inttime.Time, inttime.Summary](
		reach.WithTracer(reach.NewOTelTracer(tracer)),
	)
	builder.AddNode(0, 1, 1, defaultTable(1, 1))
	builder.AddNode(1, 1, 1, defaultTable(1, 1))
	builder.AddNode(2, 1, 1, incrementTable(1, 1, 1))
	builder.AddEdge(reach.Source{Node: 0, Port: 0}, reach.Target{Node: 1, Port: 0})
	builder.AddEdge(reach.Source{Node: 1, Port: 0}, reach.Target{Node: 2, Port: 0})
	builder.AddEdge(reach.Source{Node: 2, Port: 0}, reach.Target{Node: 0, Port: 0})

	fmt.Println("acyclic:", builder.IsAcyclic())

	tracker, _, err := builder.Build()
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	tracker.UpdateSource(reach.Source{Node: 0, Port: 0}, 17, 1)
	tracker.PropagateAll()

	for _, change := range tracker.Pushed() {
		fmt.Printf("pushed %v at %d delta=%d\n", change.Location, change.Time, change.Delta)
	}
}

func defaultTable(inputs, outputs int) reach.SummaryTable[inttime.Summary] {
	table := make(reach.SummaryTable[inttime.Summary], inputs)
	for i := range table {
		table[i] = make([]reach.Antichain[inttime.Summary], outputs)
		for j := range table[i] {
			table[i][j] = reach.AntichainFromElem[inttime.Summary](0)
		}
	}
	return table
}

func incrementTable(inputs, outputs int, delta inttime.Summary) reach.SummaryTable[inttime.Summary] {
	table := make(reach.SummaryTable[inttime.Summary], inputs)
	for i := range table {
		table[i] = make([]reach.Antichain[inttime.Summary], outputs)
		for j := range table[i] {
			table[i][j] = reach.AntichainFromElem[inttime.Summary](delta)
		}
	}
	return table
}
