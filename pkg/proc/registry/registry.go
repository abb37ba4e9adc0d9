package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/procompose/internal/logging"
	"github.com/ib-77/procompose/pkg/proc"
)

var (
	ErrDuplicate = errors.New("name already registered")
	ErrUnknown   = errors.New("unknown processor or pipeline")
	ErrCycle     = errors.New("pipeline cycle")
)

// Config is the YAML shape read by Load.
type Config struct {
	Pipelines map[string][]string `yaml:"pipelines"`
}

type Registry struct {
	mu         sync.RWMutex
	processors map[string]proc.Processor
	pipelines  map[string][]string
}

func New() *Registry {
	return &Registry{
		processors: map[string]proc.Processor{},
		pipelines:  map[string][]string{},
	}
}

// Register adds a named processor.
func (r *Registry) Register(name string, p proc.Processor) error {
	if name == "" || proc.IsNil(p) {
		return fmt.Errorf("register %q: name and processor are required", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(name) {
		return fmt.Errorf("register %q: %w", name, ErrDuplicate)
	}
	r.processors[name] = p
	return nil
}

// Define adds a named pipeline. Steps may name processors or pipelines not
// registered yet; they are resolved by Build.
func (r *Registry) Define(name string, steps ...string) error {
	if name == "" {
		return errors.New("define: pipeline name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(name) {
		return fmt.Errorf("define %q: %w", name, ErrDuplicate)
	}
	r.pipelines[name] = append([]string(nil), steps...)
	return nil
}

func (r *Registry) taken(name string) bool {
	_, isProc := r.processors[name]
	_, isPipe := r.pipelines[name]
	return isProc || isPipe
}

// Load defines every pipeline of a YAML document.
func (r *Registry) Load(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("load pipelines: %w", err)
	}

	names := make([]string, 0, len(cfg.Pipelines))
	for name := range cfg.Pipelines {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.Define(name, cfg.Pipelines[name]...); err != nil {
			return fmt.Errorf("load pipelines: %w", err)
		}
	}
	logging.New("registry").Debug("pipelines loaded", "count", len(names))
	return nil
}

func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load pipelines: %w", err)
	}
	return r.Load(data)
}

// Build resolves name into a processor. Pipelines become proc.Compose of
// their resolved steps, named after the pipeline.
func (r *Registry) Build(name string) (proc.Processor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.build(name, nil)
}

func (r *Registry) build(name string, path []string) (proc.Processor, error) {
	if p, ok := r.processors[name]; ok {
		return p, nil
	}
	steps, ok := r.pipelines[name]
	if !ok {
		return nil, fmt.Errorf("build %q: %w", name, ErrUnknown)
	}
	for _, seen := range path {
		if seen == name {
			return nil, fmt.Errorf("build %q: %w: %s", name, ErrCycle,
				strings.Join(append(path, name), " -> "))
		}
	}

	path = append(path, name)
	processors := make([]proc.Processor, 0, len(steps))
	for _, step := range steps {
		p, err := r.build(step, path)
		if err != nil {
			return nil, err
		}
		processors = append(processors, proc.Named(step, p))
	}
	return proc.Named(name, proc.Compose(processors...)), nil
}

// Names lists registered processors and pipelines in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.processors)+len(r.pipelines))
	for name := range r.processors {
		names = append(names, name)
	}
	for name := range r.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
