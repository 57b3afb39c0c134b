package runtimex

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
)

// Plugin extends an instance. Initialize runs during setup, Destroy during teardown.
type Plugin interface {
	Initialize(ctx context.Context) error
	Destroy() error
}

// PluginFactory creates the plugin called name. args are the words that
// follow the factory name in Ice.Plugin.<name>.
type PluginFactory func(inst *Instance, name string, args []string) (Plugin, error)

var (
	factoriesMu sync.RWMutex
	factories   = map[string]PluginFactory{}
)

// RegisterPluginFactory makes factory available to Ice.Plugin.<name>=<factoryName> properties.
// Registering the same name twice replaces the earlier factory.
func RegisterPluginFactory(factoryName string, factory PluginFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[factoryName] = factory
}

func lookupPluginFactory(factoryName string) (PluginFactory, bool) {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	f, ok := factories[factoryName]
	return f, ok
}

type namedPlugin struct {
	name        string
	plugin      Plugin
	initialized bool
}

// PluginManager owns the plugins of one instance.
type PluginManager struct {
	inst    *Instance
	loggers *loggerRef

	mu          sync.Mutex
	plugins     []*namedPlugin
	initialized bool
	destroyed   bool
}

func newPluginManager(inst *Instance, loggers *loggerRef) *PluginManager {
	return &PluginManager{inst: inst, loggers: loggers}
}

// LoadPlugins creates every plugin configured through Ice.Plugin.<name>.
// Plugins named in loadOrder come first, the rest follow sorted by name.
func (m *PluginManager) LoadPlugins(configured map[string]string, loadOrder []string) error {
	names := make([]string, 0, len(configured))
	seen := make(map[string]bool, len(configured))
	for _, name := range loadOrder {
		if _, ok := configured[name]; !ok {
			return errors.Newf(errors.CodeInitialization, "plugin %q in Ice.PluginLoadOrder is not configured", name)
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	var rest []string
	for name := range configured {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	for _, name := range names {
		words := strings.Fields(configured[name])
		if len(words) == 0 {
			return errors.Newf(errors.CodeInitialization, "plugin %q has no factory", name)
		}
		factory, ok := lookupPluginFactory(words[0])
		if !ok {
			return errors.Newf(errors.CodeInitialization, "plugin %q: unknown factory %q", name, words[0])
		}
		p, err := factory(m.inst, name, words[1:])
		if err != nil {
			return errors.Wrapf(errors.CodeInitialization, "PluginManager.LoadPlugins", err, "plugin %q", name)
		}
		if err := m.AddPlugin(name, p); err != nil {
			return err
		}
	}
	return nil
}

// AddPlugin registers an already created plugin.
func (m *PluginManager) AddPlugin(name string, p Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return errors.New(errors.CodeDestroyed, "plugin manager destroyed")
	}
	for _, np := range m.plugins {
		if np.name == name {
			return errors.Newf(errors.CodeAlreadyRegistered, "plugin %q already registered", name)
		}
	}
	m.plugins = append(m.plugins, &namedPlugin{name: name, plugin: p})
	return nil
}

// GetPlugin returns the plugin called name.
func (m *PluginManager) GetPlugin(name string) (Plugin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, np := range m.plugins {
		if np.name == name {
			return np.plugin, nil
		}
	}
	return nil, errors.Newf(errors.CodeNotRegistered, "plugin %q not registered", name)
}

// InitializePlugins initializes the loaded plugins in load order. It may be
// called once; the first failure stops the sequence.
func (m *PluginManager) InitializePlugins(ctx context.Context) error {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return errors.New(errors.CodeInitialization, "plugins already initialized")
	}
	m.initialized = true
	plugins := append([]*namedPlugin(nil), m.plugins...)
	m.mu.Unlock()

	for _, np := range plugins {
		if err := np.plugin.Initialize(ctx); err != nil {
			return errors.Wrapf(errors.CodeInitialization, "PluginManager.InitializePlugins", err, "plugin %q", np.name)
		}
		m.mu.Lock()
		np.initialized = true
		m.mu.Unlock()
		m.loggers.get().Debug("plugin initialized", log.Str("plugin", np.name))
	}
	return nil
}

// Destroy destroys every loaded plugin in reverse load order and returns the
// combined errors. Later calls are no-ops.
func (m *PluginManager) Destroy() error {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return nil
	}
	m.destroyed = true
	plugins := m.plugins
	m.plugins = nil
	m.mu.Unlock()

	var err error
	for i := len(plugins) - 1; i >= 0; i-- {
		np := plugins[i]
		if derr := np.plugin.Destroy(); derr != nil {
			err = multierr.Append(err, fmt.Errorf("plugin %q: %w", np.name, derr))
		}
	}
	return err
}
