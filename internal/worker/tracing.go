package worker

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("github.com/Arielcito/rcfapp-sub002/internal/worker")
