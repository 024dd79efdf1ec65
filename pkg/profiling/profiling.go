// Package profiling pushes continuous profiles of the API process to a
// Pyroscope server and labels samples with the route being served.
package profiling

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/pkg/logger"
)

const (
	defaultAppName        = "langexchange-api"
	defaultUploadInterval = 15 * time.Second

	// Sampling rates used while mutex or block profiles are requested
	mutexProfileFraction = 5
	blockProfileRate     = 5

	// RouteLabel is the pprof label carrying the route template
	RouteLabel = "route"
)

// sampleTypes maps configured names onto pyroscope profile types. Request
// handling is dominated by store round trips, so cpu, alloc and goroutines
// are the useful defaults.
var sampleTypes = map[string][]pyroscope.ProfileType{
	"cpu":        {pyroscope.ProfileCPU},
	"alloc":      {pyroscope.ProfileAllocSpace, pyroscope.ProfileAllocObjects},
	"inuse":      {pyroscope.ProfileInuseSpace, pyroscope.ProfileInuseObjects},
	"goroutines": {pyroscope.ProfileGoroutines},
	"mutex":      {pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration},
	"block":      {pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration},
}

var defaultSampleTypes = []string{"cpu", "alloc", "goroutines"}

// Settings configures the profiler
type Settings struct {
	Enabled        bool
	Endpoint       string
	AppName        string
	SampleTypes    string
	UploadInterval time.Duration

	ServiceVersion string
	InstanceID     string
	Environment    string
}

// plan is the resolved profiler configuration
type plan struct {
	types []pyroscope.ProfileType
	mutex bool
	block bool
}

// Start begins pushing profiles. When profiling is disabled it returns a
// no-op stop function.
func Start(s Settings) (func(), error) {
	if !s.Enabled {
		logger.Info("Continuous profiling disabled")
		return func() {}, nil
	}

	endpoint := strings.TrimSpace(s.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("profiling endpoint is required when profiling is enabled")
	}
	interval := s.UploadInterval
	if interval <= 0 {
		interval = defaultUploadInterval
	}

	p, err := parseSampleTypes(s.SampleTypes)
	if err != nil {
		return nil, err
	}

	// Mutex and block profiles stay empty unless the runtime samples them
	if p.mutex {
		runtime.SetMutexProfileFraction(mutexProfileFraction)
	}
	if p.block {
		runtime.SetBlockProfileRate(blockProfileRate)
	}

	appName := appName(s.AppName)
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		Tags:            tags(s),
		ServerAddress:   endpoint,
		UploadRate:      interval,
		ProfileTypes:    p.types,
		Logger:          logger.With(zap.String("component", "pyroscope")).Sugar(),
	})
	if err != nil {
		resetRates(p)
		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}

	logger.Info("Continuous profiling initialized",
		zap.String("application_name", appName),
		zap.String("endpoint", endpoint),
		zap.Int("profile_types", len(p.types)),
		zap.Duration("upload_interval", interval),
	)

	return func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("Failed to stop profiler", zap.Error(stopErr))
		}
		resetRates(p)
	}, nil
}

// WithRoute runs fn with the route template attached as a pprof label, so
// CPU samples taken while serving a request can be split by route.
func WithRoute(ctx context.Context, route string, fn func(context.Context)) {
	pyroscope.TagWrapper(ctx, pyroscope.Labels(RouteLabel, route), fn)
}

func parseSampleTypes(value string) (plan, error) {
	names := defaultSampleTypes
	if value = strings.TrimSpace(value); value != "" {
		names = strings.Split(value, ",")
	}

	var p plan
	seen := make(map[pyroscope.ProfileType]bool)
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		mapped, ok := sampleTypes[name]
		if !ok {
			return plan{}, fmt.Errorf("unsupported O11Y_PROFILING_SAMPLE_TYPES value: %q", name)
		}
		p.mutex = p.mutex || name == "mutex"
		p.block = p.block || name == "block"
		for _, t := range mapped {
			if !seen[t] {
				seen[t] = true
				p.types = append(p.types, t)
			}
		}
	}

	if len(p.types) == 0 {
		return parseSampleTypes("")
	}
	return p, nil
}

func appName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return defaultAppName
}

// tags returns the static series tags; empty values are left out
func tags(s Settings) map[string]string {
	out := make(map[string]string, 3)
	for k, v := range map[string]string{
		"environment":     s.Environment,
		"service_version": s.ServiceVersion,
		"instance":        s.InstanceID,
	} {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	return out
}

func resetRates(p plan) {
	if p.mutex {
		runtime.SetMutexProfileFraction(0)
	}
	if p.block {
		runtime.SetBlockProfileRate(0)
	}
}
